// Package registry holds the Registry of migrations and the dependency
// resolver that orders them deterministically (Kahn's algorithm with a
// lexicographic tie-break), grounded on the teacher's internal/engine/topo.go
// generic TopoSort.
package registry

import "github.com/cetane-dev/cetane/internal/ast"

// Migration is a named, ordered bundle of schema operations with declared
// dependencies. Identity is Name; once registered a Migration is treated as
// immutable by the Registry and Migrator.
type Migration struct {
	Name       string
	DependsOn  []string
	Atomic     bool // default true; set explicitly via NewMigration
	Operations []ast.Operation
}

// NewMigration builds a Migration with Atomic defaulting to true, matching
// spec §3's "atomic flag (default true)".
func NewMigration(name string, operations ...ast.Operation) *Migration {
	return &Migration{Name: name, Atomic: true, Operations: operations}
}

// DependsOnNames sets the migration's dependency set and returns the
// migration for chaining.
func (m *Migration) DependsOnNames(names ...string) *Migration {
	m.DependsOn = names
	return m
}

// NonAtomic marks the migration as not wrapped in a transaction even when
// the backend supports transactional DDL.
func (m *Migration) NonAtomic() *Migration {
	m.Atomic = false
	return m
}

// IsReversible reports whether every operation in the migration is
// reversible — true iff each operation's Reverse() returns ok=true (spec §8
// invariant 5).
func (m *Migration) IsReversible() bool {
	for _, op := range m.Operations {
		if _, ok := op.Reverse(); !ok {
			return false
		}
	}
	return true
}

// ID and Dependencies return the migration's name and the names it depends
// on. ResolveOrder reads Name and DependsOn directly and does not call them.
func (m *Migration) ID() string             { return m.Name }
func (m *Migration) Dependencies() []string { return m.DependsOn }
