// Package catalogue loads the static skill table from YAML and ships the
// default catalogue embedded in the binary.
//
// File layout:
//
//	skills:
//	  - id: H1
//	    name: Programming Logic
//	    value: 10
//	    time_cost: 40
//	    complexity: 2
//	    prerequisites: []
//	    category: basic   # optional; derived when absent
//
// Unknown keys and structurally invalid documents are rejected with
// skill.ErrMalformedCatalogue; field-level checks (positive numbers,
// duplicate ids, self-references) are done by skill.NewGraph.
package catalogue

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skillpath/skill"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrEmpty indicates a document without any skill rows.
var ErrEmpty = errors.New("catalogue: no skills")

// document mirrors the YAML file.
type document struct {
	Skills []row `yaml:"skills"`
}

type row struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Value         float64  `yaml:"value"`
	TimeCost      float64  `yaml:"time_cost"`
	Complexity    int      `yaml:"complexity"`
	Prerequisites []string `yaml:"prerequisites"`
	Category      string   `yaml:"category"`
}

// Decode reads catalogue rows from r.
func Decode(r io.Reader) ([]skill.Record, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", skill.ErrMalformedCatalogue, ErrEmpty)
		}

		return nil, fmt.Errorf("%w: %v", skill.ErrMalformedCatalogue, err)
	}
	if len(doc.Skills) == 0 {
		return nil, fmt.Errorf("%w: %w", skill.ErrMalformedCatalogue, ErrEmpty)
	}

	recs := make([]skill.Record, 0, len(doc.Skills))
	for _, r := range doc.Skills {
		recs = append(recs, skill.Record{
			ID:            r.ID,
			Name:          r.Name,
			Value:         r.Value,
			TimeCost:      r.TimeCost,
			Complexity:    r.Complexity,
			Prerequisites: r.Prerequisites,
			Category:      r.Category,
		})
	}

	return recs, nil
}

// Load reads catalogue rows from the YAML file at path.
func Load(path string) ([]skill.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	recs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalogue: %s: %w", path, err)
	}

	return recs, nil
}

// Encode writes recs to w in the format read by Decode.
func Encode(w io.Writer, recs []skill.Record) error {
	doc := document{Skills: make([]row, 0, len(recs))}
	for _, r := range recs {
		doc.Skills = append(doc.Skills, row{
			ID:            r.ID,
			Name:          r.Name,
			Value:         r.Value,
			TimeCost:      r.TimeCost,
			Complexity:    r.Complexity,
			Prerequisites: r.Prerequisites,
			Category:      r.Category,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalogue: encode: %w", err)
	}

	return enc.Close()
}

// Default returns the rows of the embedded default catalogue.
// It panics if the embedded file does not decode.
func Default() []skill.Record {
	recs, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(err)
	}

	return recs
}

// Build constructs and validates a graph from recs. Any error is fatal to
// the run: no solver may execute against the returned graph otherwise.
func Build(recs []skill.Record) (*skill.Graph, error) {
	g, err := skill.NewGraph(recs)
	if err != nil {
		return nil, err
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Open loads, builds and validates the catalogue at path. An empty path
// selects the embedded default.
func Open(path string) (*skill.Graph, error) {
	if path == "" {
		return Build(Default())
	}
	recs, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Build(recs)
}
