package system

import (
	"testing"

	"github.com/ianarawjo/overworld/common"
	"github.com/ianarawjo/overworld/ecs/component"
)

func TestResolveDirection(t *testing.T) {
	cases := []struct {
		name      string
		in        component.Input
		wantLabel string
		wantVec   common.Vec2
	}{
		{"up_left", component.Input{Left: true, Up: true}, "move-up-left", common.Vec2{X: -0.71, Y: -0.71}},
		{"down_left", component.Input{Left: true, Down: true}, "move-down-left", common.Vec2{X: -0.71, Y: 0.71}},
		{"left", component.Input{Left: true}, "move-left", common.Vec2{X: -1, Y: 0}},
		{"up_right", component.Input{Right: true, Up: true}, "move-up-right", common.Vec2{X: 0.71, Y: -0.71}},
		{"down_right", component.Input{Right: true, Down: true}, "move-down-right", common.Vec2{X: 0.71, Y: 0.71}},
		{"right", component.Input{Right: true}, "move-right", common.Vec2{X: 1, Y: 0}},
		{"up", component.Input{Up: true}, "move-up", common.Vec2{X: 0, Y: -1}},
		{"down", component.Input{Down: true}, "move-down", common.Vec2{X: 0, Y: 1}},
		{"none", component.Input{}, "", common.Vec2{}},

		// Tie-breaking: the left group wins over the right group, and
		// diagonals win over single axes.
		{"left_beats_right", component.Input{Left: true, Right: true}, "move-left", common.Vec2{X: -1, Y: 0}},
		{"up_left_beats_up_right", component.Input{Left: true, Right: true, Up: true}, "move-up-left", common.Vec2{X: -0.71, Y: -0.71}},
		{"diagonal_beats_axis", component.Input{Left: true, Up: true, Down: true}, "move-up-left", common.Vec2{X: -0.71, Y: -0.71}},
		{"up_beats_down", component.Input{Up: true, Down: true}, "move-up", common.Vec2{X: 0, Y: -1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			label, vec := ResolveDirection(c.in)
			if label != c.wantLabel {
				t.Fatalf("label = %q, want %q", label, c.wantLabel)
			}
			if vec != c.wantVec {
				t.Fatalf("vec = %+v, want %+v", vec, c.wantVec)
			}
		})
	}
}

func TestStandState(t *testing.T) {
	cases := []struct {
		name    string
		current string
		want    string
		wantOK  bool
	}{
		{"move_left", "move-left", "stand-left", true},
		{"move_down_right", "move-down-right", "stand-down-right", true},
		{"already_standing", "stand-up", "", false},
		{"unrelated", "attack", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := StandState(c.current)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("StandState(%q) = (%q, %v), want (%q, %v)",
					c.current, got, ok, c.want, c.wantOK)
			}
		})
	}
}
