package history

import (
	"errors"
	"testing"
)

func TestStoreAppendAndLookups(t *testing.T) {
	s := NewStore()

	if err := s.Append("a", Entry{TS: 10, Value: 5}, true); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("a", Entry{TS: 11, Value: 2}, true); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("a", Entry{TS: 12, Value: 3}, true); err != nil {
		t.Fatalf("append: %v", err)
	}

	t.Run("latest", func(t *testing.T) {
		e, ok := s.Latest("a")
		if !ok || e.Value != 3 {
			t.Errorf("Latest = %v, %v; want value 3", e, ok)
		}
	})

	t.Run("first", func(t *testing.T) {
		e, ok := s.First("a")
		if !ok || e.Value != 5 {
			t.Errorf("First = %v, %v; want value 5", e, ok)
		}
	})

	t.Run("as of", func(t *testing.T) {
		cases := []struct {
			ts   int64
			want any
			ok   bool
		}{
			{9, nil, false},
			{10, 5, true},
			{11, 2, true},
			{12, 3, true},
			{100, 3, true},
		}
		for _, tc := range cases {
			e, ok := s.AsOf("a", tc.ts)
			if ok != tc.ok {
				t.Errorf("AsOf(%d) ok = %v, want %v", tc.ts, ok, tc.ok)
				continue
			}
			if ok && e.Value != tc.want {
				t.Errorf("AsOf(%d) = %v, want %v", tc.ts, e.Value, tc.want)
			}
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, ok := s.Latest("nope"); ok {
			t.Error("Latest on unknown key should report false")
		}
		if _, ok := s.First("nope"); ok {
			t.Error("First on unknown key should report false")
		}
		if _, ok := s.AsOf("nope", 100); ok {
			t.Error("AsOf on unknown key should report false")
		}
	})
}

func TestStorePinnedTimestampValidation(t *testing.T) {
	s := NewStore()
	if err := s.Append("a", Entry{TS: 10, Value: 1}, true); err != nil {
		t.Fatalf("append: %v", err)
	}

	t.Run("same timestamp on same key rejected", func(t *testing.T) {
		err := s.Append("a", Entry{TS: 10, Value: 2}, true)
		if !errors.Is(err, ErrTimestampOrder) {
			t.Errorf("expected ErrTimestampOrder, got %v", err)
		}
	})

	t.Run("older than high-water mark rejected", func(t *testing.T) {
		err := s.Append("b", Entry{TS: 9, Value: 1}, true)
		if !errors.Is(err, ErrTimestampOrder) {
			t.Errorf("expected ErrTimestampOrder, got %v", err)
		}
	})

	t.Run("equal to high-water mark allowed on fresh key", func(t *testing.T) {
		if err := s.Append("b", Entry{TS: 10, Value: 1}, true); err != nil {
			t.Errorf("append at high-water mark: %v", err)
		}
	})

	t.Run("rejected append leaves store untouched", func(t *testing.T) {
		e, _ := s.Latest("a")
		if e.Value != 1 {
			t.Errorf("timeline changed after rejected append: %v", e)
		}
	})
}

func TestStoreClockClamp(t *testing.T) {
	s := NewStore()
	if err := s.Append("a", Entry{TS: 100, Value: 1}, true); err != nil {
		t.Fatalf("append: %v", err)
	}

	// An unpinned entry behind the high-water mark is clamped forward.
	if err := s.Append("b", Entry{TS: 50, Value: 2}, false); err != nil {
		t.Fatalf("append: %v", err)
	}
	e, _ := s.Latest("b")
	if e.TS != 100 {
		t.Errorf("expected clamped TS 100, got %d", e.TS)
	}
}

func TestStoreDeletionEntries(t *testing.T) {
	s := NewStore()
	if err := s.Append("a", Entry{TS: 1, Value: 5}, true); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("a", Entry{TS: 2, Deleted: true}, true); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, ok := s.Latest("a")
	if !ok || !e.Deleted {
		t.Errorf("expected deletion entry, got %v, %v", e, ok)
	}
	if e, _ := s.First("a"); e.Deleted {
		t.Error("first entry should not be a deletion")
	}
}

func TestStoreKeysOrderAndCopies(t *testing.T) {
	s := NewStore()
	for i, key := range []string{"b", "a", "c"} {
		if err := s.Append(key, Entry{TS: int64(i + 1), Value: i}, true); err != nil {
			t.Fatalf("append %s: %v", key, err)
		}
	}

	keys := s.Keys()
	want := []string{"b", "a", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}

	// Returned slices are copies.
	keys[0] = "mutated"
	if s.Keys()[0] != "b" {
		t.Error("Keys should return a copy")
	}

	entries := s.Entries("b")
	entries[0].Value = 999
	if e, _ := s.First("b"); e.Value == 999 {
		t.Error("Entries should return a copy")
	}
}

func TestStoreMetadataPassthrough(t *testing.T) {
	s := NewStore()
	if err := s.Append("a", Entry{TS: 1, Value: 1, Source: "api", Version: "v2"}, true); err != nil {
		t.Fatalf("append: %v", err)
	}
	e, _ := s.Latest("a")
	if e.Source != "api" || e.Version != "v2" {
		t.Errorf("metadata lost: %+v", e)
	}
}
