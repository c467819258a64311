// Package partition provides a disjoint-set (union-find) container over any
// comparable atom type.
//
// Classes are tracked with path-compressed parent pointers and union by size.
// Each root also keeps the member list of its class so ClassOf does not have to
// scan every atom.
package partition

import "fmt"

// Partition is a set of atoms split into disjoint equivalence classes.
// The zero value is not usable; call New.
type Partition[T comparable] struct {
	parent  map[T]T
	members map[T][]T
	order   []T
}

// New returns an empty partition with room for hint atoms.
func New[T comparable](hint int) *Partition[T] {
	return &Partition[T]{
		parent:  make(map[T]T, hint),
		members: make(map[T][]T, hint),
		order:   make([]T, 0, hint),
	}
}

// Insert adds atom as a singleton class.
func (p *Partition[T]) Insert(atom T) error {
	if _, ok := p.parent[atom]; ok {
		return fmt.Errorf("atom %v already present", atom)
	}
	p.parent[atom] = atom
	p.members[atom] = []T{atom}
	p.order = append(p.order, atom)
	return nil
}

// Contains reports whether atom was inserted.
func (p *Partition[T]) Contains(atom T) bool {
	_, ok := p.parent[atom]
	return ok
}

// Len is the number of atoms.
func (p *Partition[T]) Len() int { return len(p.order) }

// Find returns the representative of atom's class. It panics if atom was
// never inserted.
func (p *Partition[T]) Find(atom T) T {
	root, ok := p.parent[atom]
	if !ok {
		panic(fmt.Sprintf("partition: unknown atom %v", atom))
	}
	for root != p.parent[root] {
		root = p.parent[root]
	}
	// Compress the path walked above.
	for atom != root {
		next := p.parent[atom]
		p.parent[atom] = root
		atom = next
	}
	return root
}

// Same reports whether a and b are in one class.
func (p *Partition[T]) Same(a, b T) bool {
	return p.Find(a) == p.Find(b)
}

// Size returns the number of atoms in atom's class.
func (p *Partition[T]) Size(atom T) int {
	return len(p.members[p.Find(atom)])
}

// ClassOf returns the members of atom's class. The slice is a copy.
func (p *Partition[T]) ClassOf(atom T) []T {
	m := p.members[p.Find(atom)]
	out := make([]T, len(m))
	copy(out, m)
	return out
}

// Merge unions the classes of a and b and returns the new representative.
// It reports false when both were already in one class.
func (p *Partition[T]) Merge(a, b T) (T, bool) {
	ra, rb := p.Find(a), p.Find(b)
	if ra == rb {
		return ra, false
	}
	if len(p.members[ra]) < len(p.members[rb]) {
		ra, rb = rb, ra
	}
	p.parent[rb] = ra
	p.members[ra] = append(p.members[ra], p.members[rb]...)
	delete(p.members, rb)
	return ra, true
}

// Classes returns every class, ordered by the insertion of its earliest
// inserted member.
func (p *Partition[T]) Classes() [][]T {
	out := make([][]T, 0, len(p.members))
	seen := make(map[T]bool, len(p.members))
	for _, atom := range p.order {
		root := p.Find(atom)
		if seen[root] {
			continue
		}
		seen[root] = true
		out = append(out, p.ClassOf(root))
	}
	return out
}

// Count is the number of distinct classes.
func (p *Partition[T]) Count() int { return len(p.members) }
