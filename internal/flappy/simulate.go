package flappy

// Script drives a headless run: a fixed step and a flap every FlapEvery ticks.
type Script struct {
	Ticks     int
	DT        float64
	FlapEvery int // 0 never flaps
}

// SimResult summarizes a headless run.
type SimResult struct {
	Ticks     int   // Host ticks executed, including ones spent in game over
	GameOvers []int // Host tick index at which each round ended
	Final     Stats
	Entity    Entity
}

// Simulate runs the script against g. A flap on a game-over tick starts a new
// round, exactly as a player's press would.
func Simulate(g *Game, s Script) SimResult {
	var res SimResult
	for i := 0; i < s.Ticks; i++ {
		if s.FlapEvery > 0 && i%s.FlapEvery == 0 {
			g.HandleAction()
		}

		running := g.State() == RoundRunning
		g.Step(s.DT)
		if running && g.State() == RoundGameOver {
			res.GameOvers = append(res.GameOvers, i)
		}
		res.Ticks++
	}
	res.Final = g.Stats()
	res.Entity = g.Entity()
	return res
}
