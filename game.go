package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
	"github.com/ianarawjo/overworld/ecs/entity"
	"github.com/ianarawjo/overworld/ecs/system"
	"github.com/ianarawjo/overworld/prefabs"
)

const (
	baseWidth  = 800
	baseHeight = 600
)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	player    ecs.Entity

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher *prefabs.Watcher
}

// NewGame builds the world: camera, player, and the per-frame system order
// (input snapshot, player controller, movement, camera follow, animation).
// Spawn failures are fatal; the game never starts half-built.
func NewGame(debug, watch bool) (*Game, error) {
	world := ecs.NewWorld()

	if _, err := entity.NewCamera(world); err != nil {
		return nil, fmt.Errorf("spawn camera: %w", err)
	}
	player, err := entity.NewPlayer(world)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	g := &Game{
		debug:     debug,
		world:     world,
		renderer:  system.NewRenderSystem(),
		player:    player,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(keyboardSource),
			system.NewPlayerControllerSystem(),
			system.NewMovementSystem(),
			system.NewCameraSystem(),
			system.NewAnimationSystem(),
		),
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainPrefabEvents()

	g.frames++
	dt := 1.0 / float64(ebiten.TPS())
	return g.scheduler.Update(g.world, dt)
}

// drainPrefabEvents respawns the player when a prefab spec changes on disk.
// The clip table is immutable, so a reload means a fresh entity, not a
// mutated one; position carries over so the swap is invisible.
func (g *Game) drainPrefabEvents() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
		default:
			if reload {
				g.respawnPlayer()
			}
			return
		}
	}
}

func (g *Game) respawnPlayer() {
	var prevX, prevY float64
	keepPos := false
	if tr, ok := ecs.Get(g.world, g.player, component.TransformComponent); ok {
		prevX, prevY = tr.X, tr.Y
		keepPos = true
	}

	player, err := entity.NewPlayer(g.world)
	if err != nil {
		// Keep the old player; a broken edit should not kill a dev session.
		log.Printf("prefab reload: %v", err)
		return
	}
	ecs.DestroyEntity(g.world, g.player)
	g.player = player
	if keepPos {
		if tr, ok := ecs.Get(g.world, g.player, component.TransformComponent); ok {
			tr.X, tr.Y = prevX, prevY
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		state, frame := "?", -1
		if ref, ok := ecs.Get(g.world, g.player, component.AnimatorComponent); ok && ref.Anim != nil {
			state = ref.Anim.State()
			frame = ref.Anim.FrameIndex()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    state: %s    frame: %d", ebiten.ActualFPS(), state, frame))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// keyboardSource samples the movement keys, accepting WASD alongside the
// arrow keys.
func keyboardSource() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
	}
}
