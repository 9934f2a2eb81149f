package system

import (
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

// KeySource samples which movement keys are held right now. The game host
// supplies one backed by the real keyboard; tests supply a fake.
type KeySource func() component.Input

// InputSystem copies one keyboard snapshot per frame into every Input
// component, so everything downstream sees the same key state for the whole
// tick.
type InputSystem struct {
	source KeySource
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) error {
	if w == nil || i.source == nil {
		return nil
	}
	snapshot := i.source()
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		*in = snapshot
	})
	return nil
}
