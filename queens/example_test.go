package queens_test

import (
	"fmt"

	"github.com/quistella/amaze/queens"
)

// ExampleConflicts counts attacking pairs on a deliberately bad board.
func ExampleConflicts() {
	b := queens.Board{2, 2, 2, 2} // all queens share row 2
	fmt.Println(queens.Conflicts(b))
	// Output:
	// 6
}

// ExampleClimb starts from a known solution, so the climb stops at once.
func ExampleClimb() {
	res, err := queens.Climb(queens.Board{1, 3, 5, 7, 2, 0, 6, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Success, res.Iters, res.FinalConflicts)
	// Output:
	// true 0 0
}

// ExampleBoard_String renders queen placement as an ASCII grid.
func ExampleBoard_String() {
	fmt.Print(queens.Board{1, 3, 0, 2})
	// Output:
	// . . Q .
	// Q . . .
	// . . . Q
	// . Q . .
}
