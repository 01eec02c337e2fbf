package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "epu.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSetGetRoundtrip(t *testing.T) {
	st := openTestStore(t)
	if ok := st.Set("rewards_state", `{"balance":50}`); !ok {
		t.Fatalf("set failed")
	}
	got, ok := st.Get("rewards_state")
	if !ok {
		t.Fatalf("expected key to be present")
	}
	if got != `{"balance":50}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)
	if _, ok := st.Get("nope"); ok {
		t.Fatalf("expected missing key")
	}
}

func TestSetOverwrites(t *testing.T) {
	st := openTestStore(t)
	st.Set("k", "first")
	st.Set("k", "second")
	got, ok := st.Get("k")
	if !ok || got != "second" {
		t.Fatalf("expected overwritten value, got %q ok=%v", got, ok)
	}
}

func TestRemoveAndClear(t *testing.T) {
	st := openTestStore(t)
	st.Set("a", "1")
	st.Set("b", "2")
	st.Remove("a")
	if _, ok := st.Get("a"); ok {
		t.Fatalf("expected removed key to be absent")
	}
	if _, ok := st.Get("b"); !ok {
		t.Fatalf("expected untouched key to remain")
	}
	st.Clear()
	if _, ok := st.Get("b"); ok {
		t.Fatalf("expected cleared store to be empty")
	}
}

func TestOpenMemory(t *testing.T) {
	st, err := OpenMemory(nil)
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	st.Set("k", "v")
	if got, ok := st.Get("k"); !ok || got != "v" {
		t.Fatalf("memory store roundtrip failed: %q ok=%v", got, ok)
	}
}
