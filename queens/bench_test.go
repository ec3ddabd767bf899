package queens

import "testing"

func BenchmarkConflicts8(b *testing.B) {
	board := RandomBoard(8, rngFromSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Conflicts(board)
	}
}

func BenchmarkClimb8(b *testing.B) {
	start := RandomBoard(8, rngFromSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Climb(start, WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandomRestart8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := RandomRestart(8, 50, WithSeed(int64(i)+1)); err != nil {
			b.Fatal(err)
		}
	}
}
