package component

// Transform is an entity's world position. World Y points up, matching the
// physics space; the renderer converts to screen coordinates.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
