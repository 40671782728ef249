package model

// Summary aggregates cluster cardinalities of a Partition.
type Summary struct {
	Clusters int
	MinSize  int
	MaxSize  int
	MeanSize float64
}

// Empty reports whether the summarized partition had no clusters. Min, max
// and mean are meaningless in that case and must not be reported.
func (s Summary) Empty() bool {
	return s.Clusters == 0
}

// Summarize computes cluster-size statistics over a partition. A partition
// with no clusters yields a Summary with Empty() == true rather than
// aggregating over nothing.
func Summarize(p Partition) Summary {
	if len(p) == 0 {
		return Summary{}
	}

	s := Summary{Clusters: len(p)}
	total := 0
	for _, members := range p {
		size := len(members)
		total += size
		if s.MinSize == 0 || size < s.MinSize {
			s.MinSize = size
		}
		if size > s.MaxSize {
			s.MaxSize = size
		}
	}
	s.MeanSize = float64(total) / float64(len(p))
	return s
}
