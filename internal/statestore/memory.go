package statestore

import (
	"context"
	"sort"
)

// Memory is an in-process MigrationStateStore, useful for tests and for
// callers that persist the applied set themselves. Not safe for concurrent
// use from multiple goroutines without external synchronization, matching
// the rest of Cetane's single-threaded execution model.
type Memory struct {
	applied map[string]int // name -> application sequence
	seq     int
}

// NewMemory returns an empty in-memory state store.
func NewMemory() *Memory {
	return &Memory{applied: make(map[string]int)}
}

func (m *Memory) AppliedMigrations(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.applied))
	for name := range m.applied {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return m.applied[names[i]] < m.applied[names[j]] })
	return names, nil
}

func (m *Memory) MarkApplied(ctx context.Context, name string) error {
	if _, ok := m.applied[name]; ok {
		return nil
	}
	m.seq++
	m.applied[name] = m.seq
	return nil
}

func (m *Memory) MarkUnapplied(ctx context.Context, name string) error {
	delete(m.applied, name)
	return nil
}
