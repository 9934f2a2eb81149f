package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}

	if spec.MoveSpeed != 32 {
		t.Fatalf("move_speed = %v, want 32", spec.MoveSpeed)
	}
	if spec.StartState != "move-down" {
		t.Fatalf("start_state = %q, want move-down", spec.StartState)
	}
	if spec.Sprite.CellW != 16 || spec.Sprite.CellH != 32 {
		t.Fatalf("cell size = %dx%d, want 16x32", spec.Sprite.CellW, spec.Sprite.CellH)
	}

	// Every move state needs a stand partner so the idle fallback always
	// resolves, and the start state must be authored.
	names := make(map[string][]int, len(spec.Clips))
	for _, clip := range spec.Clips {
		if clip.Name == "" {
			t.Fatalf("clip with empty name")
		}
		if len(clip.Frames) == 0 {
			t.Fatalf("clip %q has no frames", clip.Name)
		}
		for _, f := range clip.Frames {
			if f == 0 {
				t.Fatalf("clip %q has a zero frame id", clip.Name)
			}
		}
		names[clip.Name] = clip.Frames
	}
	if _, ok := names[spec.StartState]; !ok {
		t.Fatalf("start state %q has no clip", spec.StartState)
	}
	for name := range names {
		if len(name) > 4 && name[:4] == "move" {
			if _, ok := names["stand"+name[4:]]; !ok {
				t.Fatalf("move clip %q has no stand partner", name)
			}
		}
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Zoom <= 0 {
		t.Fatalf("zoom = %v, want > 0", spec.Zoom)
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
