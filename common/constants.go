package common

// Simulation tick. Ebiten drives Update at a fixed 60 TPS, so every
// per-tick counter in the game is coupled to this rate, not wall-clock time.
const (
	TickRate  = 60
	TickDelta = 1.0 / float64(TickRate)
)

// Bucket and barrier geometry, in world units. World Y points up; the
// renderer flips to screen coordinates.
const (
	BucketWidth    = 300.0
	BucketHeight   = 150.0
	BucketYOffset  = -100.0
	BarrierPadding = 100.0
	WallThickness  = 20.0

	// ScreenSize is the square logical resolution: the larger bucket
	// dimension plus barrier padding on both sides.
	ScreenSize = BucketWidth + BarrierPadding*2
)

// Ball sizing and growth.
const (
	BallBaseSize        = 7.0
	BallLevelSize       = 7.0
	SpecialBallSize     = 10.0
	GrowDurationSeconds = 2.0
)

// Dropper tuning.
const (
	DroppableRange         = 4
	BallDropperOffset      = 190.0
	DropSpamYBlockOffset   = 100.0
	DropSpamXBlockDistance = 35.0

	// UpcomingBallX/Y is where the preview of the next droppable ball sits,
	// just outside the bucket's left wall.
	UpcomingBallX = -BucketWidth*0.5 - BarrierPadding*0.5
	UpcomingBallY = 0.0
)

// Rules.
const (
	StrikeLimit     = 4
	ColorCycleCount = 6
	ScoreEaseStep   = 10
)

// Ball body tuning. Friction is zero so stacks slide into place; the
// elevated gravity scale makes drops feel snappy.
const (
	Gravity          = 300.0
	BallRestitution  = 0.2
	BallFriction     = 0.0
	BallGravityScale = 4.0
)
