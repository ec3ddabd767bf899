package queens

// RandomRestart layers restarts over Climb: draw a uniformly random
// n-column board, climb it, and repeat until the first success or until
// the restart budget is exhausted, summing accepted moves across attempts
// and retaining the best (lowest-conflict) attempt seen.
//
// A budget of 0 still performs a single attempt, so the boundary case
// behaves exactly like one Climb from a random board. All attempts share
// one random source — random boards and tie-breaks draw from the same
// seeded stream, keeping whole runs reproducible.
//
// Errors: ErrEmptyBoard for n <= 0, ErrBadRestarts for a negative budget,
// plus the option errors shared with Climb. Budget exhaustion itself is
// Success=false, never an error.
func RandomRestart(n, maxRestarts int, opts ...Option) (RestartResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return RestartResult{}, err
	}
	if n <= 0 {
		return RestartResult{}, ErrEmptyBoard
	}
	if maxRestarts < 0 {
		return RestartResult{}, ErrBadRestarts
	}
	attempts := maxRestarts
	if attempts == 0 {
		attempts = 1
	}

	rng := o.rng()
	var res RestartResult
	for attempt := 1; attempt <= attempts; attempt++ {
		cr := climb(RandomBoard(n, rng), o, rng)
		res.TotalIters += cr.Iters
		res.RestartsUsed = attempt
		if attempt == 1 || cr.FinalConflicts < res.Best.FinalConflicts {
			res.Best = cr
		}
		if cr.Success {
			res.Success = true

			return res, nil
		}
	}

	return res, nil
}
