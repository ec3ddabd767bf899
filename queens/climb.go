package queens

import "math/rand"

// Climb runs one hill-climbing attempt from start.
//
// Strategy (best-improvement, the default):
//  1. If start already has zero conflicts, return immediately with
//     Iters=0 and Success=true.
//  2. Each iteration scans the full row-reassignment neighborhood and
//     collects the set of neighbors with the minimum conflict count.
//  3. A strictly smaller minimum is accepted (uniformly at random among
//     ties) and resets the sideways counter.
//  4. An equal minimum is accepted the same way while sideways moves
//     remain under the cap, incrementing the counter.
//  5. Otherwise the climb stops: local optimum or exhausted plateau.
//     Reaching the iteration cap stops it as well.
//
// With WithFirstImprovement the scan instead accepts the first strictly
// improving neighbor in enumeration order; plateaus always terminate.
//
// Exhausting a cap is not an error — it comes back as Success=false with
// whatever conflict count remains. Errors are reserved for contract
// violations: invalid boards (ErrEmptyBoard, ErrRowOutOfRange) and invalid
// options (ErrBadIterations, ErrBadSideways).
//
// Complexity: O(MaxIters · n⁴) worst case for n columns.
func Climb(start Board, opts ...Option) (ClimbResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return ClimbResult{}, err
	}
	if err = validateBoard(start); err != nil {
		return ClimbResult{}, err
	}

	return climb(start, o, o.rng()), nil
}

// climb is the option-validated core shared with RandomRestart; rng is the
// single random source for every tie-break in this attempt.
func climb(start Board, o Options, rng *rand.Rand) ClimbResult {
	cur := start.Clone()
	curVal := Conflicts(cur)
	res := ClimbResult{
		Start:          start.Clone(),
		Final:          cur,
		StartConflicts: curVal,
		FinalConflicts: curVal,
		Success:        curVal == 0,
	}
	if curVal == 0 {
		return res
	}

	sideways := 0
	for it := 1; it <= o.MaxIters; it++ {
		var accepted bool
		if o.FirstImprovement {
			cur, curVal, accepted = acceptFirst(cur, curVal)
		} else {
			cur, curVal, accepted = acceptBest(cur, curVal, &sideways, o, rng)
		}
		if !accepted {
			// Local optimum or exhausted plateau.
			res.Final = cur
			res.FinalConflicts = curVal
			res.Iters = it
			res.SidewaysUsed = sideways
			res.Success = curVal == 0

			return res
		}
		if curVal == 0 {
			res.Final = cur
			res.FinalConflicts = 0
			res.Iters = it
			res.SidewaysUsed = sideways
			res.Success = true

			return res
		}
	}

	res.Final = cur
	res.FinalConflicts = curVal
	res.Iters = o.MaxIters
	res.SidewaysUsed = sideways
	res.Success = curVal == 0

	return res
}

// acceptBest performs one steepest-ascent step: scan all neighbors, find
// the minimum conflict value and every move achieving it, then accept one
// (uniformly at random among ties) if it improves — or, within the
// sideways budget, if it merely equals the current value.
func acceptBest(cur Board, curVal int, sideways *int, o Options, rng *rand.Rand) (Board, int, bool) {
	bestVal := -1
	var bestMoves []move
	forEachNeighbor(cur, func(mv move, conflicts int) bool {
		switch {
		case bestVal < 0 || conflicts < bestVal:
			bestVal = conflicts
			bestMoves = append(bestMoves[:0], mv)
		case conflicts == bestVal:
			bestMoves = append(bestMoves, mv)
		}

		return false
	})

	switch {
	case bestVal >= 0 && bestVal < curVal:
		*sideways = 0
	case bestVal == curVal && o.AllowSideways && *sideways < o.MaxSideways && len(bestMoves) > 0:
		*sideways++
	default:
		return cur, curVal, false
	}

	mv := bestMoves[0]
	if len(bestMoves) > 1 {
		mv = bestMoves[rng.Intn(len(bestMoves))]
	}
	next := cur.Clone()
	next[mv.col] = mv.row

	return next, bestVal, true
}

// acceptFirst accepts the first strictly improving neighbor in enumeration
// order, without scanning the rest of the neighborhood.
func acceptFirst(cur Board, curVal int) (Board, int, bool) {
	found := false
	var pick move
	var pickVal int
	forEachNeighbor(cur, func(mv move, conflicts int) bool {
		if conflicts < curVal {
			found = true
			pick = mv
			pickVal = conflicts

			return true
		}

		return false
	})
	if !found {
		return cur, curVal, false
	}
	next := cur.Clone()
	next[pick.col] = pick.row

	return next, pickVal, true
}
