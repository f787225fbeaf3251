package store

import (
	"context"
	"testing"

	"github.com/goliatone/go-resource-client/model"
)

func resourceID(r model.Resource) string { return r.ID }

func newRepo() *MemoryRepository[model.Resource] {
	return NewMemoryRepository(resourceID)
}

func sample(id, name string) model.Resource {
	return model.NewResource(id, model.NewResourceData(name, model.TypeDocument))
}

func TestMemoryRepositorySaveAndFind(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sample("res-1", "alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, "res-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.Name != "alpha" {
		t.Errorf("expected alpha, got %s", got.Data.Name)
	}
}

func TestMemoryRepositorySaveOverwrites(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sample("res-1", "alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, sample("res-1", "beta")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, "res-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.Name != "beta" {
		t.Errorf("expected beta, got %s", got.Data.Name)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestMemoryRepositoryInsertConflict(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, sample("res-1", "alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Insert(ctx, sample("res-1", "beta"))
	if !IsConflict(err) {
		t.Fatalf("expected a conflict error, got %v", err)
	}
}

func TestMemoryRepositoryFindMissing(t *testing.T) {
	repo := newRepo()

	_, err := repo.FindByID(context.Background(), "res-404")
	if !IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sample("res-1", "alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, "res-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, "res-1"); !IsNotFound(err) {
		t.Fatalf("expected a not-found error on double delete, got %v", err)
	}
}

func TestMemoryRepositoryFindAllAndCount(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	for _, r := range []model.Resource{
		sample("res-1", "alpha"),
		sample("res-2", "beta"),
		sample("res-3", "gamma"),
	} {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 records, got %d", len(all))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestStoreErrorKinds(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConnection, "connection"},
		{KindQuery, "query"},
		{KindNotFound, "not found"},
		{KindConflict, "conflict"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("kind %d: expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}
