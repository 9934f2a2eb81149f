package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	CellW   int     `yaml:"cell_w"`
	CellH   int     `yaml:"cell_h"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

// ClipSpec is one named animation. Frames are signed 1-based atlas cell ids;
// a negative id draws the cell x-flipped. A zero FPS falls back to the
// animator's default rate, and clips loop unless `once` is set.
type ClipSpec struct {
	Name   string  `yaml:"name"`
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Once   bool    `yaml:"once"`
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	MoveSpeed  float64       `yaml:"move_speed"`
	StartState string        `yaml:"start_state"`
	Transform  TransformSpec `yaml:"transform"`
	Sprite     SpriteSpec    `yaml:"sprite"`
	Clips      []ClipSpec    `yaml:"clips"`
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Zoom      float64       `yaml:"zoom"`
	Transform TransformSpec `yaml:"transform"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
