package component

import (
	"image/color"

	"github.com/milk9111/bingle/common"
)

// RankKind discriminates the two-case rank union.
type RankKind uint8

const (
	RankSimple RankKind = iota
	RankSpecial
)

// Rank is a ball's merge-equivalence class: Simple with a level, or the
// fixed-size Special rank. Special is never rolled by the current dropper
// range but stays defined so the drop table can be widened later.
type Rank struct {
	Kind  RankKind
	Level int
}

// SimpleRank returns the Simple rank at level.
func SimpleRank(level int) Rank {
	return Rank{Kind: RankSimple, Level: level}
}

// SpecialRank returns the terminal Special rank.
func SpecialRank() Rank {
	return Rank{Kind: RankSpecial}
}

// Size returns the ball radius for this rank.
func (r Rank) Size() float64 {
	if r.Kind == RankSpecial {
		return common.SpecialBallSize
	}
	return common.BallBaseSize + float64(r.Level)*common.BallLevelSize
}

// rankColors is the six-color cycle; ranks past the cycle wrap around.
var rankColors = [common.ColorCycleCount]color.NRGBA{
	{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, // orange
	{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, // gray
	{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}, // sea green
	{R: 0x9a, G: 0xcd, B: 0x32, A: 0xff}, // yellow green
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, // gold
}

// Color returns the display color for this rank.
func (r Rank) Color() color.NRGBA {
	if r.Kind == RankSpecial {
		return color.NRGBA{A: 0xff}
	}
	return rankColors[r.Level%common.ColorCycleCount]
}

// Ball marks an entity as a droppable, mergeable ball. The stored rank is
// the settled rank; a Growth component, when present, overrides it for
// merge matching.
type Ball struct {
	Rank Rank
}

var BallComponent = NewComponent[Ball]()
