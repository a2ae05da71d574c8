package component

// Pointer is the singleton input sample: the pointer's world-space X and
// whether a release (mouse button up or touch end) happened this tick.
// Mouse and touch are normalized into the same fields.
type Pointer struct {
	WorldX   float64
	Released bool
}

var PointerComponent = NewComponent[Pointer]()
