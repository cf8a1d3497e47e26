package registry

import (
	"sort"

	"github.com/cetane-dev/cetane/internal/alerr"
)

// Registry maps migration name to Migration. Insertion order is preserved
// (via names) for stable iteration of Registered(); resolve order itself is
// fully determined by ResolveOrder's lexicographic tie-break, independent of
// insertion order (spec §8 invariant 2).
type Registry struct {
	byName map[string]*Migration
	names  []string // insertion order
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*Migration)}
}

// Register inserts a migration. Duplicate names fail with ErrDuplicateName.
func (r *Registry) Register(m *Migration) error {
	if _, exists := r.byName[m.Name]; exists {
		return alerr.New(alerr.ErrDuplicateName, "migration name already registered").WithMigration(m.Name)
	}
	r.byName[m.Name] = m
	r.names = append(r.names, m.Name)
	return nil
}

// Get returns the migration with the given name, or nil if not registered.
func (r *Registry) Get(name string) *Migration {
	return r.byName[name]
}

// Len returns the number of registered migrations.
func (r *Registry) Len() int { return len(r.names) }

// Registered returns all migrations in insertion order.
func (r *Registry) Registered() []*Migration {
	out := make([]*Migration, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// ResolveOrder performs a deterministic topological sort over the registry:
// Kahn's algorithm with a lexicographic tie-break among nodes currently at
// in-degree zero (spec §4.4). Missing dependencies and cycles are reported
// before any partial order is returned.
func (r *Registry) ResolveOrder() ([]*Migration, error) {
	if len(r.names) == 0 {
		return nil, nil
	}

	for _, m := range r.byName {
		for _, dep := range m.DependsOn {
			if _, ok := r.byName[dep]; !ok {
				return nil, alerr.New(alerr.ErrMissingDependency, "dependency not registered").
					WithMigration(m.Name).With("missing", dep)
			}
		}
	}

	inDegree := make(map[string]int, len(r.names))
	for name, m := range r.byName {
		inDegree[name] = len(m.DependsOn)
	}

	var ready []string
	for name, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	// dependents[d] lists migrations that declare d as a dependency, so each
	// completed node can decrement its dependents' in-degree in O(deps).
	dependents := make(map[string][]string, len(r.names))
	for name, m := range r.byName {
		for _, dep := range m.DependsOn {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	result := make([]*Migration, 0, len(r.names))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		result = append(result, r.byName[name])

		newlyReady := false
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
				newlyReady = true
			}
		}
		if newlyReady {
			sort.Strings(ready)
		}
	}

	if len(result) != len(r.names) {
		var residual []string
		for name, deg := range inDegree {
			if deg > 0 {
				residual = append(residual, name)
			}
		}
		sort.Strings(residual)
		return nil, alerr.New(alerr.ErrCycle, "dependency graph has a cycle").With("nodes", residual)
	}

	return result, nil
}
