package component

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState is returned when a clip name is not in the table. For
	// SetState this is recoverable: the controller is left untouched and
	// callers may ignore it.
	ErrUnknownState = errors.New("animation: unknown state")
	// ErrInvalidFrameRate is returned when an activated clip has fps <= 0.
	// That is authored-data breakage; callers should abort rather than run
	// with undefined timing.
	ErrInvalidFrameRate = errors.New("animation: frame rate must be positive")
)

// DefaultClipFPS is the playback rate used when a clip spec omits one.
const DefaultClipFPS = 5.0

// LoopMode controls what happens after a clip's last frame.
type LoopMode int

const (
	// LoopForever wraps from the last frame back to the first.
	LoopForever LoopMode = iota
	// LoopOnce freezes on the last frame until the next state change.
	LoopOnce
)

// Clip is one named animation: an ordered list of signed frame ids and a
// playback rate. A frame id's magnitude addresses an atlas cell (1-based);
// a negative id means the cell is drawn x-flipped.
type Clip struct {
	Frames []int
	FPS    float64
	Loop   LoopMode
}

// ClipFromFrames builds a looping clip at DefaultClipFPS.
func ClipFromFrames(frames ...int) Clip {
	return Clip{Frames: frames, FPS: DefaultClipFPS, Loop: LoopForever}
}

// ClipTable maps state names to clips. It is built once at spawn and must
// not be mutated afterwards; any number of animators may share one table.
type ClipTable map[string]Clip

// clock is a repeating interval timer fed with elapsed seconds.
type clock struct {
	period float64
	acc    float64
}

func (c *clock) reset(period float64) {
	c.period = period
	c.acc = 0
}

// tick accumulates dt and returns how many whole periods expired.
func (c *clock) tick(dt float64) int {
	if c.period <= 0 {
		return 0
	}
	c.acc += dt
	n := 0
	for c.acc >= c.period {
		c.acc -= c.period
		n++
	}
	return n
}

// Animator is a per-entity animation state machine: it tracks the active
// clip, the position within it, and the playback clock. State changes come
// from the player controller; frame advances come from the animation system.
type Animator struct {
	clips ClipTable
	state string
	frame int
	clock clock
}

// NewAnimator creates an animator positioned at frame 0 of the start state.
// It fails when the start state is missing or its clip has a non-positive
// frame rate; both mean the authored data is wrong and the entity must not
// become playable.
func NewAnimator(clips ClipTable, startState string) (*Animator, error) {
	clip, ok := clips[startState]
	if !ok {
		return nil, fmt.Errorf("start state %q: %w", startState, ErrUnknownState)
	}
	if clip.FPS <= 0 {
		return nil, fmt.Errorf("start state %q: %w", startState, ErrInvalidFrameRate)
	}
	a := &Animator{clips: clips, state: startState}
	a.clock.reset(1 / clip.FPS)
	return a, nil
}

// State returns the active clip name.
func (a *Animator) State() string {
	return a.state
}

// FrameIndex returns the position within the active clip.
func (a *Animator) FrameIndex() int {
	return a.frame
}

// SetState switches to the named clip, rewinding to frame 0 and restarting
// the clock at the new clip's period. Switching to the current state rewinds
// too; callers suppress redundant transitions. On error the animator is left
// exactly as it was: ErrUnknownState for a name not in the table (ignorable),
// ErrInvalidFrameRate for a clip with fps <= 0 (abort).
func (a *Animator) SetState(name string) error {
	clip, ok := a.clips[name]
	if !ok {
		return fmt.Errorf("state %q: %w", name, ErrUnknownState)
	}
	if clip.FPS <= 0 {
		return fmt.Errorf("state %q: %w", name, ErrInvalidFrameRate)
	}
	a.state = name
	a.frame = 0
	a.clock.reset(1 / clip.FPS)
	return nil
}

// Tick advances the clock by dt seconds and steps the frame position once
// per expired period, in order. It returns how many frames were advanced.
// A frozen LoopOnce clip stays on its last frame until the next SetState.
func (a *Animator) Tick(dt float64) int {
	clip, ok := a.clips[a.state]
	if !ok || len(clip.Frames) == 0 {
		return 0
	}
	steps := a.clock.tick(dt)
	for i := 0; i < steps; i++ {
		next := a.frame + 1
		if next >= len(clip.Frames) {
			if clip.Loop == LoopForever {
				next = 0
			} else {
				next = a.frame
			}
		}
		a.frame = next
	}
	return steps
}

// CurrentFrame returns the active clip's current signed frame id. ok is
// false when the clip has no frames, in which case render output must stay
// unchanged.
func (a *Animator) CurrentFrame() (int, bool) {
	clip, ok := a.clips[a.state]
	if !ok || a.frame >= len(clip.Frames) {
		return 0, false
	}
	return clip.Frames[a.frame], true
}

// DecodeFrame turns a signed frame id into an atlas cell index and a flip
// flag: cell = |id| - 1, flip when the id is negative. cellCount > 0 bounds
// the index modulo the atlas size so a bad id can not address past the
// sheet.
func DecodeFrame(id, cellCount int) (cell int, flip bool) {
	cell = id
	if cell < 0 {
		cell = -cell
	}
	cell--
	if cell < 0 {
		cell = 0
	}
	if cellCount > 0 {
		cell %= cellCount
	}
	return cell, id < 0
}

// AnimatorRef attaches an animator to an entity.
type AnimatorRef struct {
	Anim *Animator
}

var AnimatorComponent = NewComponent[AnimatorRef]()
