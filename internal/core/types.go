package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step() error
	Cells() []uint8
}
