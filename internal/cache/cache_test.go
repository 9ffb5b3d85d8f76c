package cache_test

import (
	"testing"
	"time"

	"github.com/funvibe/minic/internal/cache"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/token"
)

func TestHashIsStableAndContentSensitive(t *testing.T) {
	a := cache.Hash("var x = 1")
	b := cache.Hash("var x = 1")
	c := cache.Hash("var x = 2")

	if a != b {
		t.Error("expected identical source to hash identically")
	}
	if a == c {
		t.Error("expected different source to hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected a 64-character hex SHA-256 digest, got %d characters", len(a))
	}
}

func TestStoreThenLookupRoundTrips(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer store.Close()

	hash := cache.Hash("var x = 1")
	want := &cache.Entry{
		Diagnostics: []*diagnostics.DiagnosticError{
			diagnostics.NewError(diagnostics.ErrRedeclare, token.Token{}, "Cannot redeclare x; first declared at 0"),
		},
		Emitted:    "var x = 1",
		CompiledAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := store.Store(hash, want); err != nil {
		t.Fatalf("storing entry: %v", err)
	}

	got, ok, err := store.Lookup(hash)
	if err != nil {
		t.Fatalf("looking up entry: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit after storing")
	}
	if got.Emitted != want.Emitted {
		t.Errorf("emitted mismatch: got %q want %q", got.Emitted, want.Emitted)
	}
	if !got.CompiledAt.Equal(want.CompiledAt) {
		t.Errorf("compiledAt mismatch: got %v want %v", got.CompiledAt, want.CompiledAt)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Code != diagnostics.ErrRedeclare {
		t.Errorf("diagnostics mismatch: got %+v", got.Diagnostics)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Lookup(cache.Hash("never stored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a miss for a hash that was never stored")
	}
}

func TestStoreOverwritesExistingEntry(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer store.Close()

	hash := cache.Hash("var x = 1")
	first := &cache.Entry{Emitted: "var x = 1", CompiledAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	second := &cache.Entry{Emitted: "var x = 2", CompiledAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}

	if err := store.Store(hash, first); err != nil {
		t.Fatalf("storing first entry: %v", err)
	}
	if err := store.Store(hash, second); err != nil {
		t.Fatalf("storing second entry: %v", err)
	}

	got, ok, err := store.Lookup(hash)
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if got.Emitted != "var x = 2" {
		t.Errorf("expected overwritten entry, got %q", got.Emitted)
	}
}
