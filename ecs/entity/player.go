package entity

import (
	"fmt"

	"github.com/ianarawjo/overworld/assets"
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
	"github.com/ianarawjo/overworld/ecs/render"
	"github.com/ianarawjo/overworld/prefabs"
)

// NewPlayer spawns the player from prefabs/player.yaml: sprite atlas, clip
// table, animator, input, velocity, and transform. Any spec problem —
// missing sheet, bad cell size, unknown start state, non-positive frame
// rate — is returned before the entity exists, so a half-built player never
// reaches the world.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}

	sheet, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		return 0, fmt.Errorf("player: load sheet: %w", err)
	}
	atlas, err := render.NewAtlas(sheet, spec.Sprite.CellW, spec.Sprite.CellH)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	anim, err := component.NewAnimator(BuildClipTable(spec.Clips), spec.StartState)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	sprite := &component.Sprite{
		Atlas:   atlas,
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}
	// Show the start state's first frame before the first tick runs.
	if frame, ok := anim.CurrentFrame(); ok {
		sprite.FrameIndex, sprite.FlipX = component.DecodeFrame(frame, atlas.CellCount())
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerComponent, &component.Player{MoveSpeed: spec.MoveSpeed}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:      spec.Transform.X,
		Y:      spec.Transform.Y,
		ScaleX: spec.Transform.ScaleX,
		ScaleY: spec.Transform.ScaleY,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AnimatorComponent, &component.AnimatorRef{Anim: anim}); err != nil {
		return 0, err
	}
	return e, nil
}

// BuildClipTable converts clip specs into the runtime table. FPS defaults
// and loop flags resolve here; frame ids pass through untouched.
func BuildClipTable(specs []prefabs.ClipSpec) component.ClipTable {
	table := make(component.ClipTable, len(specs))
	for _, spec := range specs {
		clip := component.Clip{
			Frames: append([]int(nil), spec.Frames...),
			FPS:    spec.FPS,
			Loop:   component.LoopForever,
		}
		if clip.FPS == 0 {
			clip.FPS = component.DefaultClipFPS
		}
		if spec.Once {
			clip.Loop = component.LoopOnce
		}
		table[spec.Name] = clip
	}
	return table
}
