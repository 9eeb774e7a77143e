package bricks

// Snapshot is a plain-value copy of the session state, used to compare
// sessions and to check determinism.
type Snapshot struct {
	Tick           int
	Difficulty     string
	Status         Status
	Score          int
	Lives          int
	PaddleX        int
	PaddleWidth    int
	PaddleMovement int
	BallX          int
	BallY          int
	BallDX         int
	BallDY         int

	// Remaining bricks, 3 ints each: Row, Col, Hits
	BrickData []int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	brickData := make([]int, 0, len(s.bricks)*3)
	for _, b := range s.bricks {
		row, col := b.Cell()
		brickData = append(brickData, row, col, b.Hits())
	}

	paddle := s.paddle.Bounds()
	ball := s.ball.Bounds()
	dx, dy := s.ball.Velocity()

	return Snapshot{
		Tick:           s.ticks,
		Difficulty:     string(s.difficulty),
		Status:         s.status,
		Score:          s.score,
		Lives:          s.lives,
		PaddleX:        paddle.X,
		PaddleWidth:    paddle.W,
		PaddleMovement: s.paddle.Movement(),
		BallX:          ball.X,
		BallY:          ball.Y,
		BallDX:         dx,
		BallDY:         dy,
		BrickData:      brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, r := range snap.Difficulty {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Status)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleWidth)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleMovement) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY)         //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
