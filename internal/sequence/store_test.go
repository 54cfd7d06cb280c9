package sequence

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "sequence.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLastEmpty(t *testing.T) {
	store := openTestStore(t)

	last, ok, err := store.Last("ASN", 23)
	if err != nil {
		t.Fatalf("Last returned error: %v", err)
	}
	if ok || last != 0 {
		t.Errorf("Last on empty store = (%d, %v), want (0, false)", last, ok)
	}
}

func TestRecordAndLast(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("ASN", 23, 160); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	last, ok, err := store.Last("ASN", 23)
	if err != nil {
		t.Fatalf("Last returned error: %v", err)
	}
	if !ok || last != 160 {
		t.Errorf("Last = (%d, %v), want (160, true)", last, ok)
	}

	// other prefixes and years are independent
	if _, ok, _ := store.Last("ASN", 24); ok {
		t.Error("Last(ASN, 24) found a counter that was never recorded")
	}
	if _, ok, _ := store.Last("INV", 23); ok {
		t.Error("Last(INV, 23) found a counter that was never recorded")
	}
}

func TestRecordIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("ASN", 23, 200); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	// a lower serial must not move the counter backwards
	if err := store.Record("ASN", 23, 80); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	last, _, err := store.Last("ASN", 23)
	if err != nil {
		t.Fatalf("Last returned error: %v", err)
	}
	if last != 200 {
		t.Errorf("Last = %d after lower Record, want 200", last)
	}

	if err := store.Record("ASN", 23, 280); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	last, _, _ = store.Last("ASN", 23)
	if last != 280 {
		t.Errorf("Last = %d, want 280", last)
	}
}

func TestAll(t *testing.T) {
	store := openTestStore(t)

	counters, err := store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(counters) != 0 {
		t.Errorf("All on empty store = %v, want none", counters)
	}

	store.Record("INV", 24, 12)
	store.Record("ASN", 23, 160)
	store.Record("ASN", 24, 40)

	counters, err = store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}

	want := []Counter{
		{Prefix: "ASN", Year: 23, LastSerial: 160},
		{Prefix: "ASN", Year: 24, LastSerial: 40},
		{Prefix: "INV", Year: 24, LastSerial: 12},
	}
	if len(counters) != len(want) {
		t.Fatalf("All returned %d counters, want %d", len(counters), len(want))
	}
	for i := range want {
		if counters[i] != want[i] {
			t.Errorf("counters[%d] = %+v, want %+v", i, counters[i], want[i])
		}
	}
}
