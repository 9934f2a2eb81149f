package system

import (
	"errors"
	"fmt"

	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

// PlayerControllerSystem turns the frame's key snapshot into a movement
// velocity and an animation state transition. Transitions to a state missing
// from the clip table are dropped silently; a state with a broken frame rate
// aborts the frame instead, so the game never runs with undefined timing.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ float64) error {
	if w == nil {
		return nil
	}

	var updateErr error
	ecs.ForEach3(w, component.PlayerComponent, component.InputComponent, component.AnimatorComponent,
		func(e ecs.Entity, player *component.Player, in *component.Input, ref *component.AnimatorRef) {
			if updateErr != nil || ref.Anim == nil {
				return
			}

			facing, dir := ResolveDirection(*in)

			if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
				moved := dir.Scale(player.MoveSpeed)
				vel.X = moved.X
				vel.Y = moved.Y
			}

			target := facing
			if target == "" {
				// No key held: fall back to the idle state for the
				// direction the player was last moving in.
				stand, ok := StandState(ref.Anim.State())
				if !ok {
					return
				}
				target = stand
			}
			if target == ref.Anim.State() {
				return
			}

			if err := ref.Anim.SetState(target); err != nil {
				if errors.Is(err, component.ErrUnknownState) {
					return
				}
				updateErr = fmt.Errorf("player %s: %w", e, err)
			}
		})
	return updateErr
}
