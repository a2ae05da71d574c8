package component

// Growth is the in-progress size animation a ball runs after winning a
// merge. Progress stays in [0, 1); reaching 1 collapses the ball to the
// settled Simple(Target) rank and removes this component.
type Growth struct {
	Target   int
	Progress float64
}

var GrowthComponent = NewComponent[Growth]()
