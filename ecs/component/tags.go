package component

// BarrierTag marks an out-of-bounds barrier: any ball touching one is
// despawned and costs a strike.
type BarrierTag struct{}

var BarrierTagComponent = NewComponent[BarrierTag]()

// PreviewTag marks the dropper's upcoming-ball proxy. It has no physics
// body and no Ball component, so it survives restarts and never merges.
type PreviewTag struct{}

var PreviewTagComponent = NewComponent[PreviewTag]()
