package component

// Game is the singleton round state. Score never decreases within a round;
// Over flips false to true exactly once, when strikes reach the limit, and
// only a restart clears it.
//
// InterpolatedScore is the eased display value. It converges on Score by a
// fixed step per tick, so its rate is coupled to the tick rate.
type Game struct {
	Score             int
	InterpolatedScore int
	Strikes           int
	Over              bool

	// RestartQueued is set by the drop gate when a release arrives while
	// the round is over; the game state system performs the reset.
	RestartQueued bool
}

var GameComponent = NewComponent[Game]()
