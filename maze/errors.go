package maze

import "errors"

// Sentinel errors for maze parsing and transitions.
var (
	// ErrEmptyMaze indicates the input declared no traversable cells.
	ErrEmptyMaze = errors.New("maze: input must declare at least one cell")
	// ErrRagged indicates grid rows of differing lengths.
	ErrRagged = errors.New("maze: all grid rows must have the same length")
	// ErrBadCell indicates an unknown character in a grid line.
	ErrBadCell = errors.New("maze: unknown cell character")
	// ErrBadLine indicates a malformed cell or endpoint declaration.
	ErrBadLine = errors.New("maze: malformed declaration line")
	// ErrDuplicateStart indicates more than one start cell was declared.
	ErrDuplicateStart = errors.New("maze: duplicate start declaration")
	// ErrDuplicateGoal indicates more than one goal cell was declared.
	ErrDuplicateGoal = errors.New("maze: duplicate goal declaration")

	// ErrUnknownAction is returned by Result for an action outside the
	// four defined moves.
	ErrUnknownAction = errors.New("maze: unknown action")
	// ErrOutside is returned by Result when a position is not part of the
	// maze, or a move leads off the declared cells.
	ErrOutside = errors.New("maze: position outside the maze")
	// ErrBlocked is returned by Result when a wall or a closed passability
	// bit forbids the move.
	ErrBlocked = errors.New("maze: action blocked")
)
