package memory

import (
	"context"
	"testing"
	"time"

	"slimdown/internal/domain"
)

func TestContestantRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	alice := domain.Contestant{
		Name:           "Alice",
		DateOfBirth:    "1990-05-15",
		StartingWeight: 200,
		CurrentWeight:  200,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.Add(ctx, alice); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := db.Add(ctx, alice); err == nil {
		t.Error("expected error for duplicate name")
	}

	bob := domain.Contestant{Name: "Bob", DateOfBirth: "1985-01-20", StartingWeight: 180, CurrentWeight: 180}
	if err := db.Add(ctx, bob); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Lookup
	got, err := db.Get(ctx, "Alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.StartingWeight != 200 {
		t.Errorf("Get(Alice) = %+v", got)
	}
	missing, err := db.Get(ctx, "Carol")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown name, got %+v", missing)
	}

	// Mutating the returned copy must not touch the store.
	got.CurrentWeight = 1
	again, _ := db.Get(ctx, "Alice")
	if again.CurrentWeight != 200 {
		t.Error("Get returned a reference to the stored record")
	}

	// Enrollment order
	list, err := db.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Alice" || list[1].Name != "Bob" {
		t.Errorf("unexpected order: %+v", list)
	}

	// Update keeps position
	alice.CurrentWeight = 175.5
	if err := db.Update(ctx, alice); err != nil {
		t.Fatalf("Update: %v", err)
	}
	list, _ = db.List(ctx)
	if list[0].Name != "Alice" || list[0].CurrentWeight != 175.5 {
		t.Errorf("update lost position or value: %+v", list[0])
	}
	if err := db.Update(ctx, domain.Contestant{Name: "Carol"}); err == nil {
		t.Error("expected error updating unknown contestant")
	}

	// Remove
	if err := db.Remove(ctx, "Alice"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	list, _ = db.List(ctx)
	if len(list) != 1 || list[0].Name != "Bob" {
		t.Errorf("unexpected roster after remove: %+v", list)
	}
	if err := db.Remove(ctx, "Alice"); err == nil {
		t.Error("expected error removing unknown contestant")
	}
}

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Username != "bob" {
		t.Errorf("expected bob, got %s", u.Username)
	}

	u2, err := db.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u2 == nil || u2.ID != u.ID {
		t.Error("failed to retrieve user")
	}

	count, _ := db.Count(ctx)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	err := repo.Create(ctx, 1, "token123", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sess, err := repo.GetByToken(ctx, "token123")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if sess == nil {
		t.Error("expected session, got nil")
	}

	_ = repo.Delete(ctx, "token123")
	sess, _ = repo.GetByToken(ctx, "token123")
	if sess != nil {
		t.Error("expected nil (deleted)")
	}

	// Expired sessions are dropped on read.
	_ = repo.Create(ctx, 1, "stale", time.Now().Add(-time.Minute))
	sess, _ = repo.GetByToken(ctx, "stale")
	if sess != nil {
		t.Error("expected nil (expired)")
	}
}
