package skill

// Summary aggregates one numeric field over the catalogue.
type Summary struct {
	Min, Max, Mean, Total float64
}

// Stats is a snapshot of catalogue-wide aggregates.
type Stats struct {
	Count      int
	Edges      int // prerequisite links
	ByCategory map[Category]int
	Value      Summary
	Time       Summary
	Complexity Summary
}

// Stats computes aggregates over every skill. O(V).
func (g *Graph) Stats() Stats {
	st := Stats{Count: len(g.ids), Edges: g.edges.EdgeCount(), ByCategory: make(map[Category]int, 3)}
	if st.Count == 0 {
		return st
	}
	var v, t, c []float64
	for _, id := range g.ids {
		s := g.skills[id]
		st.ByCategory[s.Category]++
		v = append(v, s.Value)
		t = append(t, s.TimeCost)
		c = append(c, float64(s.Complexity))
	}
	st.Value = summarize(v)
	st.Time = summarize(t)
	st.Complexity = summarize(c)

	return st
}

func summarize(xs []float64) Summary {
	s := Summary{Min: xs[0], Max: xs[0]}
	for _, x := range xs {
		s.Total += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Mean = s.Total / float64(len(xs))

	return s
}
