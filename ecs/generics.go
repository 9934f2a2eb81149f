package ecs

import "github.com/ianarawjo/overworld/ecs/component"

// Add attaches a component to an entity, replacing any existing one of the
// same kind. Components are stored by pointer so systems mutate them in
// place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	w.table(handle.Kind().ID()).Set(e.id(), value)
	return nil
}

// Remove detaches a component, returning whether one was present.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) || !handle.Kind().Valid() {
		return false
	}
	return w.table(handle.Kind().ID()).Remove(e.id())
}

// Has reports whether an entity holds a component of the given kind.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) || !handle.Kind().Valid() {
		return false
	}
	return w.table(handle.Kind().ID()).Has(e.id())
}

// Get returns an entity's component of the given kind.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) || !handle.Kind().Valid() {
		return nil, false
	}
	v := w.table(handle.Kind().ID()).Get(e.id())
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach visits every entity holding the given component kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || !handle.Kind().Valid() || fn == nil {
		return
	}
	t := w.table(handle.Kind().ID())
	for i, id := range t.denseIDs {
		if cast, ok := t.denseValues[i].(*T); ok {
			fn(w.entityFor(id), cast)
		}
	}
}

// ForEach2 visits every entity holding both component kinds.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every entity holding all three component kinds.
func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.Kind(), hb.Kind(), hc.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		c, okC := Get(w, e, hc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
