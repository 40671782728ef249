package model

import "sort"

// Partition maps a cluster representative to the addresses equivalent to it,
// the representative included. It is immutable once built and is the only
// artifact a clustering run persists.
type Partition map[AddressID][]AddressID

// Cluster is one entry of a Partition.
type Cluster struct {
	Root    AddressID
	Members []AddressID
}

// TopBySize returns the k largest clusters ordered by descending member
// count. Ties break on the smaller root so ranking is stable within a run.
func (p Partition) TopBySize(k int) []Cluster {
	clusters := make([]Cluster, 0, len(p))
	for root, members := range p {
		clusters = append(clusters, Cluster{Root: root, Members: members})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i].Members) != len(clusters[j].Members) {
			return len(clusters[i].Members) > len(clusters[j].Members)
		}
		return clusters[i].Root < clusters[j].Root
	})
	if k >= 0 && k < len(clusters) {
		clusters = clusters[:k]
	}
	return clusters
}

// MemberSets returns the partition's clusters as a canonical slice of sorted
// member slices, itself sorted by first member. Representatives depend on
// union order, so equality checks between runs must go through this form.
func (p Partition) MemberSets() [][]AddressID {
	sets := make([][]AddressID, 0, len(p))
	for _, members := range p {
		set := make([]AddressID, len(members))
		copy(set, members)
		sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0] < sets[j][0] })
	return sets
}
