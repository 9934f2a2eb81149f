package ecs

import (
	"errors"
	"testing"

	"github.com/ianarawjo/overworld/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestWorldStaleHandles(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if !DestroyEntity(w, e) {
		t.Fatalf("first destroy should succeed")
	}
	if DestroyEntity(w, e) {
		t.Fatalf("second destroy of the same handle should fail")
	}

	// The id is recycled with a bumped generation, so the old handle stays
	// dead.
	e2 := CreateEntity(w)
	if e2 == e {
		t.Fatalf("recycled entity should not equal the destroyed handle")
	}
	if IsAlive(w, e) {
		t.Fatalf("stale handle should not be alive after id reuse")
	}
	if !IsAlive(w, e2) {
		t.Fatalf("recycled entity should be alive")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	t.Run("add_get_remove", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)

		if err := Add(w, e, h1, intPtr(10)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		v, ok := Get(w, e, h1)
		if !ok || *v != 10 {
			t.Fatalf("expected 10, got %v ok=%v", v, ok)
		}

		*v = 11
		v2, _ := Get(w, e, h1)
		if *v2 != 11 {
			t.Fatalf("components should be stored by pointer; got %d", *v2)
		}

		if !Remove(w, e, h1) {
			t.Fatalf("Remove should return true for present component")
		}
		if Has(w, e, h1) {
			t.Fatalf("component should be gone after Remove")
		}
	})

	t.Run("add_rejects_bad_input", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		DestroyEntity(w, e)

		if err := Add(w, e, h1, intPtr(1)); err == nil {
			t.Fatalf("Add to dead entity should fail")
		}
		e2 := CreateEntity(w)
		if err := Add(w, e2, h1, nil); err == nil {
			t.Fatalf("Add with nil component should fail")
		}
	})

	t.Run("query_intersection", func(t *testing.T) {
		w := NewWorld()
		both := CreateEntity(w)
		onlyInt := CreateEntity(w)

		if err := Add(w, both, h1, intPtr(1)); err != nil {
			t.Fatal(err)
		}
		if err := Add(w, both, h2, stringPtr("a")); err != nil {
			t.Fatal(err)
		}
		if err := Add(w, onlyInt, h1, intPtr(2)); err != nil {
			t.Fatal(err)
		}

		got := w.Query(h1.Kind(), h2.Kind())
		if len(got) != 1 || got[0] != both {
			t.Fatalf("expected [%v], got %v", both, got)
		}
	})

	t.Run("destroy_clears_components", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		if err := Add(w, e, h1, intPtr(5)); err != nil {
			t.Fatal(err)
		}
		DestroyEntity(w, e)
		if _, ok := Get(w, e, h1); ok {
			t.Fatalf("component should be removed with its entity")
		}
	})

	t.Run("foreach_visits_all", func(t *testing.T) {
		w := NewWorld()
		for i := 0; i < 3; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h1, intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}
		seen := 0
		ForEach(w, h1, func(_ Entity, _ *int) {
			seen++
		})
		if seen != 3 {
			t.Fatalf("expected 3 visits, got %d", seen)
		}
	})
}

func TestSchedulerOrderAndErrors(t *testing.T) {
	w := NewWorld()

	var order []string
	s := NewScheduler(
		systemFunc(func(*World, float64) error { order = append(order, "a"); return nil }),
		systemFunc(func(*World, float64) error { order = append(order, "b"); return nil }),
	)
	if err := s.Update(w, 1.0/60); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("systems ran out of order: %v", order)
	}

	wantErr := errFailingSystem
	ran := false
	s = NewScheduler(
		systemFunc(func(*World, float64) error { return wantErr }),
		systemFunc(func(*World, float64) error { ran = true; return nil }),
	)
	if err := s.Update(w, 1.0/60); err != wantErr {
		t.Fatalf("expected system error to propagate, got %v", err)
	}
	if ran {
		t.Fatalf("systems after a failing one should not run")
	}
}

var errFailingSystem = errors.New("boom")

type systemFunc func(*World, float64) error

func (f systemFunc) Update(w *World, dt float64) error {
	return f(w, dt)
}
