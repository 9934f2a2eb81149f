package ecs

import "github.com/ianarawjo/overworld/ecs/component"

// World owns entities and per-kind component tables. It is not safe for
// concurrent mutation; the game loop drives it one pass per frame.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It returns
// false for a stale or invalid handle.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, table := range w.tables {
		table.Remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	return w.entities.alive()
}

func (w *World) table(id component.ComponentID) *SparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &SparseSet{}
		w.tables[id] = t
	}
	return t
}

func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.entities.gens[id-1])
}

// Query returns the live entities that have every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	tables := make([]*SparseSet, len(kinds))
	smallest := 0
	for i, k := range kinds {
		t, ok := w.tables[k.ID()]
		if !ok || t.Len() == 0 {
			return nil
		}
		tables[i] = t
		if t.Len() < tables[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, tables[smallest].Len())
	for _, id := range tables[smallest].denseIDs {
		all := true
		for i, t := range tables {
			if i == smallest {
				continue
			}
			if !t.Has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, w.entityFor(id))
		}
	}
	return out
}

// First returns any one entity holding the given component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	t, ok := w.tables[kind.ID()]
	if !ok || t.Len() == 0 {
		return 0, false
	}
	return w.entityFor(t.denseIDs[0]), true
}
