package skill

import "math/bits"

// MaxIndexSkills bounds the number of skills a bitmask Index can address.
const MaxIndexSkills = 64

// Index is a dense, bitmask-addressable view of a validated graph, shared by
// the DP solvers. Position i is the i-th id in topological order, so every
// prerequisite of position i sits at a lower position.
//
// An Index is read-only; each solver call may build its own or share one.
type Index struct {
	IDs        []string
	Value      []float64
	Time       []float64
	Complexity []int

	// Prereq[i] holds the direct prerequisites of position i.
	Prereq []uint64

	// Closure[i] holds the transitive closure of position i, including i.
	Closure []uint64

	pos map[string]int
}

// NewIndex builds an Index over every skill of g.
// Returns the Ready error for an unvalidated graph and a *SizeError when the
// graph holds more than MaxIndexSkills skills.
func NewIndex(g *Graph) (*Index, error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}
	if err := CheckSize("index", g.Len(), MaxIndexSkills); err != nil {
		return nil, err
	}

	n := len(g.order)
	ix := &Index{
		IDs:        append([]string(nil), g.order...),
		Value:      make([]float64, n),
		Time:       make([]float64, n),
		Complexity: make([]int, n),
		Prereq:     make([]uint64, n),
		Closure:    make([]uint64, n),
		pos:        make(map[string]int, n),
	}
	for i, id := range ix.IDs {
		ix.pos[id] = i
	}
	// Topological order guarantees prerequisites are filled before use.
	for i, id := range ix.IDs {
		s := g.skills[id]
		ix.Value[i] = s.Value
		ix.Time[i] = s.TimeCost
		ix.Complexity[i] = s.Complexity
		ix.Closure[i] = 1 << uint(i)
		for _, p := range s.Prerequisites {
			j := ix.pos[p]
			ix.Prereq[i] |= 1 << uint(j)
			ix.Closure[i] |= ix.Closure[j]
		}
	}

	return ix, nil
}

// Len returns the number of positions.
func (ix *Index) Len() int { return len(ix.IDs) }

// Pos returns the position of id.
func (ix *Index) Pos(id string) (int, bool) {
	i, ok := ix.pos[id]

	return i, ok
}

// Mask returns the bitmask of ids, or ErrUnknownSkill.
func (ix *Index) Mask(ids []string) (uint64, error) {
	var m uint64
	for _, id := range ids {
		i, ok := ix.pos[id]
		if !ok {
			return 0, UnknownError(id)
		}
		m |= 1 << uint(i)
	}

	return m, nil
}

// IDsOf lists the ids of mask in topological order.
func (ix *Index) IDsOf(mask uint64) []string {
	out := make([]string, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		out = append(out, ix.IDs[i])
		mask &^= 1 << uint(i)
	}

	return out
}

// Totals sums value, time and complexity over mask.
func (ix *Index) Totals(mask uint64) (value, time float64, complexity int) {
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		value += ix.Value[i]
		time += ix.Time[i]
		complexity += ix.Complexity[i]
		mask &^= 1 << uint(i)
	}

	return value, time, complexity
}

// Closed reports whether mask is prerequisite-closed: every member's
// prerequisites are members too.
func (ix *Index) Closed(mask uint64) bool {
	m := mask
	for m != 0 {
		i := bits.TrailingZeros64(m)
		if ix.Prereq[i]&^mask != 0 {
			return false
		}
		m &^= 1 << uint(i)
	}

	return true
}
