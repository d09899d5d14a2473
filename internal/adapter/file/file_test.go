package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"slimdown/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "contestants.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Missing file reads as an empty roster.
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty roster, got %+v", list)
	}

	alice := domain.Contestant{
		Name:           "Alice",
		DateOfBirth:    "1990-05-15",
		StartingWeight: 200,
		CurrentWeight:  200,
		CreatedAt:      time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	if err := s.Add(ctx, alice); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(ctx, domain.Contestant{Name: "Bob", DateOfBirth: "1985-01-20", StartingWeight: 180, CurrentWeight: 180}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(ctx, alice); err == nil {
		t.Error("expected error for duplicate name")
	}

	got, err := s.Get(ctx, "Alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.DateOfBirth != "1990-05-15" {
		t.Errorf("Get(Alice) = %+v", got)
	}
	missing, err := s.Get(ctx, "Carol")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown name, got %+v", missing)
	}

	alice.CurrentWeight = 175.5
	if err := s.Update(ctx, alice); err != nil {
		t.Fatalf("Update: %v", err)
	}
	list, _ = s.List(ctx)
	if len(list) != 2 || list[0].Name != "Alice" || list[0].CurrentWeight != 175.5 {
		t.Errorf("update lost position or value: %+v", list)
	}

	if err := s.Remove(ctx, "Bob"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(ctx, "Bob"); err == nil {
		t.Error("expected error removing unknown contestant")
	}
	list, _ = s.List(ctx)
	if len(list) != 1 || list[0].Name != "Alice" {
		t.Errorf("unexpected roster after remove: %+v", list)
	}
}

func TestDocumentShape(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c := domain.Contestant{
		Name:           "Alice",
		DateOfBirth:    "1990-05-15",
		StartingWeight: 200,
		CurrentWeight:  190,
		CreatedAt:      time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	if err := s.Add(ctx, c); err != nil {
		t.Fatalf("Add: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read document: %v", err)
	}

	// The document is a JSON array of records; derived values are absent.
	var doc []map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not a JSON array: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc))
	}
	rec := doc[0]
	for _, key := range []string{"name", "date_of_birth", "starting_weight", "current_weight", "created_at"} {
		if _, ok := rec[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}
	for _, key := range []string{"age", "weight_lost", "percentage_lost"} {
		if _, ok := rec[key]; ok {
			t.Errorf("derived value %q must not be stored", key)
		}
	}
}

func TestExternalEditsVisible(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	doc := `[{"name":"Dana","date_of_birth":"1975-03-02","starting_weight":220,"current_weight":210,"created_at":"2025-01-02T12:00:00Z"}]`
	if err := os.WriteFile(s.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	got, err := s.Get(ctx, "Dana")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.StartingWeight != 220 {
		t.Errorf("Get(Dana) = %+v", got)
	}
}

func TestCorruptDocument(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	_, err := s.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "parse roster") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestEmptyDocument(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.Path(), []byte("\n"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty roster, got %+v", list)
	}
}

func TestWatchSeesRewrites(t *testing.T) {
	s := testStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s.Path(), func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	if err := s.Add(context.Background(), domain.Contestant{Name: "Alice", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 200}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not report the rewrite")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Watch returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop on cancel")
	}
}
