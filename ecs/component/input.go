package component

// Input stores the per-frame movement key snapshot for an entity.
type Input struct {
	Left  bool
	Up    bool
	Right bool
	Down  bool
}

var InputComponent = NewComponent[Input]()
