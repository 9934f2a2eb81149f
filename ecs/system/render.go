package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

// RenderSystem draws every sprite relative to the camera. It reads the frame
// index and flip flag the animation system resolved; it never advances
// animation state itself.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	halfW := float64(screen.Bounds().Dx()) / 2
	halfH := float64(screen.Bounds().Dy()) / 2

	ecs.ForEach2(w, component.TransformComponent, component.SpriteComponent,
		func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
			if e == r.camEntity {
				return
			}
			img := s.Atlas.Cell(s.FrameIndex)
			if img == nil {
				return
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-s.OriginX, -s.OriginY)

			sx := t.ScaleX
			if sx == 0 {
				sx = 1
			}
			if s.FlipX {
				sx = -sx
				op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
			}
			sy := t.ScaleY
			if sy == 0 {
				sy = 1
			}

			op.GeoM.Scale(sx, sy)
			op.GeoM.Rotate(t.Rotation)
			op.GeoM.Scale(zoom, zoom)
			op.GeoM.Translate((t.X-camX)*zoom+halfW, (t.Y-camY)*zoom+halfH)

			screen.DrawImage(img, op)
		})
}
