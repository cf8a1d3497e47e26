package registry

import (
	"reflect"
	"testing"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
)

func names(migrations []*Migration) []string {
	out := make([]string, len(migrations))
	for i, m := range migrations {
		out[i] = m.Name
	}
	return out
}

func TestEmptyRegistryResolvesEmpty(t *testing.T) {
	r := New()
	ordered, err := r.ResolveOrder()
	if err != nil {
		t.Fatalf("ResolveOrder() = %v", err)
	}
	if len(ordered) != 0 {
		t.Fatalf("expected empty order, got %v", ordered)
	}
}

func TestRegisterDuplicateNameFails(t *testing.T) {
	r := New()
	if err := r.Register(NewMigration("0001")); err != nil {
		t.Fatalf("first Register() = %v", err)
	}
	err := r.Register(NewMigration("0001"))
	if !alerr.Is(err, alerr.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

// TestS2ResolverTieBreak covers spec scenario S2.
func TestS2ResolverTieBreak(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("0001_b")))
	must(t, r.Register(NewMigration("0001_a")))
	must(t, r.Register(NewMigration("0002_c").DependsOnNames("0001_a", "0001_b")))

	ordered, err := r.ResolveOrder()
	if err != nil {
		t.Fatalf("ResolveOrder() = %v", err)
	}
	want := []string{"0001_a", "0001_b", "0002_c"}
	if got := names(ordered); !reflect.DeepEqual(got, want) {
		t.Fatalf("ResolveOrder() = %v, want %v", got, want)
	}
}

// TestS3Cycle covers spec scenario S3.
func TestS3Cycle(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("a").DependsOnNames("b")))
	must(t, r.Register(NewMigration("b").DependsOnNames("a")))

	_, err := r.ResolveOrder()
	if !alerr.Is(err, alerr.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestSelfDependencyIsACycle(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("a").DependsOnNames("a")))

	_, err := r.ResolveOrder()
	if !alerr.Is(err, alerr.ErrCycle) {
		t.Fatalf("expected ErrCycle for self-dependency, got %v", err)
	}
}

func TestMissingDependencyFails(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("0002").DependsOnNames("0001")))

	_, err := r.ResolveOrder()
	if !alerr.Is(err, alerr.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

// TestDiamondDependency covers the spec's boundary behavior: D appears
// after both B and C; B and C ordered lexicographically.
func TestDiamondDependency(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("a")))
	must(t, r.Register(NewMigration("b").DependsOnNames("a")))
	must(t, r.Register(NewMigration("c").DependsOnNames("a")))
	must(t, r.Register(NewMigration("d").DependsOnNames("b", "c")))

	ordered, err := r.ResolveOrder()
	if err != nil {
		t.Fatalf("ResolveOrder() = %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if got := names(ordered); !reflect.DeepEqual(got, want) {
		t.Fatalf("ResolveOrder() = %v, want %v", got, want)
	}
}

func TestResolveOrderIsDeterministicAcrossCalls(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("z")))
	must(t, r.Register(NewMigration("m").DependsOnNames("z")))
	must(t, r.Register(NewMigration("a").DependsOnNames("z")))

	first, err := r.ResolveOrder()
	if err != nil {
		t.Fatalf("ResolveOrder() = %v", err)
	}
	second, err := r.ResolveOrder()
	if err != nil {
		t.Fatalf("ResolveOrder() = %v", err)
	}
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Fatalf("resolved order is not deterministic: %v vs %v", names(first), names(second))
	}
}

func TestChecksumChainStableAcrossCalls(t *testing.T) {
	r := New()
	must(t, r.Register(NewMigration("0001")))

	b := dialect.NewSqlite()
	first, err := r.ChecksumChain(b)
	if err != nil {
		t.Fatalf("ChecksumChain() = %v", err)
	}
	second, err := r.ChecksumChain(b)
	if err != nil {
		t.Fatalf("ChecksumChain() = %v", err)
	}
	if first != second {
		t.Fatalf("checksum chain is not stable: %q vs %q", first, second)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
