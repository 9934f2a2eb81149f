package system

import (
	"strings"

	"github.com/ianarawjo/overworld/common"
	"github.com/ianarawjo/overworld/ecs/component"
)

// Facing label prefixes. Clip tables pair every move-* state with a stand-*
// state holding the same direction suffix.
const (
	movePrefix  = "move"
	standPrefix = "stand"
)

// Diagonal movement keeps the original authored magnitude rather than an
// exact 1/sqrt(2).
const diagonal = 0.71

// ResolveDirection maps a movement key snapshot to a facing label and a unit
// (or near-unit) direction in screen space, where up is -Y. Diagonals win
// over single axes and the left group wins over the right group, so
// conflicting keys resolve the same way every frame. With no keys pressed it
// returns an empty label and a zero vector.
func ResolveDirection(in component.Input) (string, common.Vec2) {
	switch {
	case in.Left && in.Up:
		return "move-up-left", common.Vec2{X: -diagonal, Y: -diagonal}
	case in.Left && in.Down:
		return "move-down-left", common.Vec2{X: -diagonal, Y: diagonal}
	case in.Left:
		return "move-left", common.Vec2{X: -1, Y: 0}
	case in.Right && in.Up:
		return "move-up-right", common.Vec2{X: diagonal, Y: -diagonal}
	case in.Right && in.Down:
		return "move-down-right", common.Vec2{X: diagonal, Y: diagonal}
	case in.Right:
		return "move-right", common.Vec2{X: 1, Y: 0}
	case in.Up:
		return "move-up", common.Vec2{X: 0, Y: -1}
	case in.Down:
		return "move-down", common.Vec2{X: 0, Y: 1}
	default:
		return "", common.Vec2{}
	}
}

// StandState derives the idle state that preserves the facing of a move
// state: "move-left" becomes "stand-left". ok is false when the current
// state is not a move state, in which case there is nothing to change.
func StandState(current string) (string, bool) {
	if !strings.HasPrefix(current, movePrefix) {
		return "", false
	}
	return standPrefix + strings.TrimPrefix(current, movePrefix), true
}
