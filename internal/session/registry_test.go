package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry(0)
	now := time.Now()

	if err := r.Add(Info{ID: "b", User: "bob", Started: now.Add(time.Second)}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := r.Add(Info{ID: "a", User: "alice", Started: now}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("List() = %+v, want oldest first", list)
	}

	r.Remove("a")
	r.Remove("missing")
	if r.Count() != 1 {
		t.Errorf("Count() after Remove = %d, want 1", r.Count())
	}
	if list := r.List(); len(list) != 1 || list[0].ID != "b" {
		t.Errorf("List() after Remove = %+v, want only b", list)
	}
}

func TestRegistryCapacity(t *testing.T) {
	r := NewRegistry(1)

	if err := r.Add(Info{ID: "one"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := r.Add(Info{ID: "two"}); !errors.Is(err, ErrFull) {
		t.Errorf("Add() over capacity error = %v, want ErrFull", err)
	}

	r.Remove("one")
	if err := r.Add(Info{ID: "two"}); err != nil {
		t.Errorf("Add() after Remove error = %v", err)
	}
}

func TestRegistryReAddReplaces(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{"unlimited", 0},
		{"at capacity", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry(tc.limit)
			if err := r.Add(Info{ID: "one", User: "a"}); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if err := r.Add(Info{ID: "one", User: "b"}); err != nil {
				t.Fatalf("re-Add() error = %v", err)
			}

			list := r.List()
			if len(list) != 1 || list[0].User != "b" {
				t.Errorf("List() = %+v, want one entry with user b", list)
			}
		})
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry(0)
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			_ = r.Add(Info{ID: id})
			_ = r.Count()
			r.Remove(id)
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}
