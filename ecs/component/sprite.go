package component

import "github.com/ianarawjo/overworld/ecs/render"

// Sprite is the render surface for an entity. FrameIndex and FlipX are
// written only by the animation system and read only by the renderer.
type Sprite struct {
	Atlas      *render.Atlas
	FrameIndex int
	FlipX      bool
	OriginX    float64
	OriginY    float64
}

var SpriteComponent = NewComponent[Sprite]()
