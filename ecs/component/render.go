package component

import "image/color"

// Circle is a filled-circle visual. The merge pass recolors it the instant
// a ball wins a merge, independent of the gradual size interpolation.
type Circle struct {
	Radius float64
	Color  color.NRGBA
}

var CircleComponent = NewComponent[Circle]()

// Rect is a filled-rectangle visual, used for bucket walls and barriers.
type Rect struct {
	Width  float64
	Height float64
	Color  color.NRGBA
}

var RectComponent = NewComponent[Rect]()
