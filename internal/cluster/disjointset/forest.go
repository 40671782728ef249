// Package disjointset implements the union-find forest backing address
// clustering, with path compression and union by rank.
package disjointset

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

// ErrNotRegistered is returned when Find or Union touches an address that
// was never registered with MakeSet. Drivers must register before unioning,
// so seeing this error means a programming bug, not bad input.
var ErrNotRegistered = errors.New("address not registered")

// Forest is a disjoint-set forest over address IDs. One Forest belongs to
// one batch run and is mutated by a single goroutine; concurrent runs each
// own a separate Forest.
type Forest struct {
	parent map[model.AddressID]model.AddressID
	rank   map[model.AddressID]uint8
}

// New returns an empty forest.
func New() *Forest {
	return &Forest{
		parent: make(map[model.AddressID]model.AddressID),
		rank:   make(map[model.AddressID]uint8),
	}
}

// Len returns the number of registered addresses.
func (f *Forest) Len() int {
	return len(f.parent)
}

// MakeSet registers x as a singleton set. Registering an address twice is a
// no-op and never resets existing membership.
func (f *Forest) MakeSet(x model.AddressID) {
	if _, ok := f.parent[x]; ok {
		return
	}
	f.parent[x] = x
	f.rank[x] = 0
}

// Find returns the representative of the set containing x and compresses the
// walked path onto it. The walk is iterative in two passes so arbitrarily
// long chains cannot exhaust the stack.
func (f *Forest) Find(x model.AddressID) (model.AddressID, error) {
	root, ok := f.parent[x]
	if !ok {
		return 0, fmt.Errorf("find %d: %w", x, ErrNotRegistered)
	}

	for root != f.parent[root] {
		root = f.parent[root]
	}

	for x != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y. Already-joined addresses, and
// x == y, are no-ops. The shallower tree attaches under the deeper root; on
// equal ranks the first argument's root attaches under the second's, whose
// rank then grows by one.
func (f *Forest) Union(x, y model.AddressID) error {
	rx, err := f.Find(x)
	if err != nil {
		return fmt.Errorf("union %d %d: %w", x, y, err)
	}
	ry, err := f.Find(y)
	if err != nil {
		return fmt.Errorf("union %d %d: %w", x, y, err)
	}

	if rx == ry {
		return nil
	}

	if f.rank[rx] > f.rank[ry] {
		f.parent[ry] = rx
		return nil
	}

	f.parent[rx] = ry
	if f.rank[rx] == f.rank[ry] {
		f.rank[ry]++
	}
	return nil
}

// Partition flattens the forest into root -> members buckets over every
// registered address. It is called once per run, after the last union.
func (f *Forest) Partition() (model.Partition, error) {
	partition := make(model.Partition)
	for x := range f.parent {
		root, err := f.Find(x)
		if err != nil {
			return nil, err
		}
		partition[root] = append(partition[root], x)
	}
	return partition, nil
}
