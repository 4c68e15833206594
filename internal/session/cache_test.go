// ABOUTME: Tests for the view-local collection cache
// ABOUTME: Covers confirmed-only mutations and the abandoned-fetch guard

package session

import (
	"errors"
	"testing"
)

type entity struct {
	ID    string
	Title string
}

func newEntityCache() *Collection[entity] {
	return NewCollection(func(e entity) string { return e.ID })
}

func TestCollectionLoad(t *testing.T) {
	c := newEntityCache()

	err := c.Load(func() ([]entity, error) {
		return []entity{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}, nil
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if c.Loading() {
		t.Fatal("still loading after Load returned")
	}
}

func TestCollectionLoadErrorLeavesCacheUnchanged(t *testing.T) {
	c := newEntityCache()

	if err := c.Load(func() ([]entity, error) { return []entity{{ID: "1"}}, nil }); err != nil {
		t.Fatal(err)
	}

	err := c.Load(func() ([]entity, error) { return nil, errors.New("boom") })
	if err == nil {
		t.Fatal("expected error")
	}
	if len(c.Items()) != 1 {
		t.Fatal("failed load must not disturb existing items")
	}
}

func TestCollectionMutations(t *testing.T) {
	c := newEntityCache()
	if err := c.Load(func() ([]entity, error) {
		return []entity{{ID: "42", Title: "old"}, {ID: "7", Title: "keep"}}, nil
	}); err != nil {
		t.Fatal(err)
	}

	c.ApplyCreate(entity{ID: "99", Title: "new"})
	items := c.Items()
	if items[0].ID != "99" {
		t.Fatalf("create must prepend, got first item %q", items[0].ID)
	}

	c.ApplyUpdate(entity{ID: "42", Title: "edited"})
	for _, it := range c.Items() {
		if it.ID == "42" && it.Title != "edited" {
			t.Fatalf("update not applied: %+v", it)
		}
	}

	c.ApplyDelete("42")
	for _, it := range c.Items() {
		if it.ID == "42" {
			t.Fatal("deleted item still present")
		}
	}

	// Deleting an absent id is a no-op, not a panic.
	c.ApplyDelete("42")
	if len(c.Items()) != 2 {
		t.Fatalf("got %d items, want 2", len(c.Items()))
	}
}

func TestCollectionUpdateUnknownIDIgnored(t *testing.T) {
	c := newEntityCache()
	c.ApplyCreate(entity{ID: "1", Title: "a"})

	c.ApplyUpdate(entity{ID: "nope", Title: "ghost"})
	items := c.Items()
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestCollectionResetAbandonsInFlightLoad(t *testing.T) {
	c := newEntityCache()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- c.Load(func() ([]entity, error) {
			close(started)
			<-release
			return []entity{{ID: "stale"}}, nil
		})
	}()

	<-started
	c.Reset()
	close(release)
	<-done

	if items := c.Items(); len(items) != 0 {
		t.Fatalf("stale fetch landed after Reset: %+v", items)
	}
}

func TestCollectionNewerLoadWins(t *testing.T) {
	c := newEntityCache()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- c.Load(func() ([]entity, error) {
			close(started)
			<-release
			return []entity{{ID: "old"}}, nil
		})
	}()

	<-started
	if err := c.Load(func() ([]entity, error) {
		return []entity{{ID: "new"}}, nil
	}); err != nil {
		t.Fatal(err)
	}

	close(release)
	<-done

	items := c.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Fatalf("superseded fetch overwrote newer result: %+v", items)
	}
}
