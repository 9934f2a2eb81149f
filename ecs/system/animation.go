package system

import (
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

// AnimationSystem advances every animator's clock by the frame's elapsed
// time and writes the resolved cell index and flip flag into the entity's
// sprite. Runs after the player controller so a transition shows its first
// frame in the same tick it happened.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) error {
	if w == nil {
		return nil
	}
	ecs.ForEach2(w, component.AnimatorComponent, component.SpriteComponent,
		func(_ ecs.Entity, ref *component.AnimatorRef, sprite *component.Sprite) {
			if ref.Anim == nil {
				return
			}
			ref.Anim.Tick(dt)
			frame, ok := ref.Anim.CurrentFrame()
			if !ok {
				// Defensively empty clip: leave the last emitted frame
				// on screen.
				return
			}
			sprite.FrameIndex, sprite.FlipX = component.DecodeFrame(frame, sprite.Atlas.CellCount())
		})
	return nil
}
