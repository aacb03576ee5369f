package piecetable

import (
	"strings"
	"testing"
)

// setupLargePieceTable builds a PieceTable of the given number of lines,
// each a fixed-width line of text, then applies a handful of inserts so the
// piece list isn't a single contiguous run.
func setupLargePieceTable(b *testing.B, lines int) *PieceTable {
	b.Helper()

	var sb strings.Builder
	for i := 0; i < lines; i++ {
		sb.WriteString("the quick brown fox jumps over the lazy dog\n")
	}
	pt := New(sb.String())

	for i := 0; i < 20; i++ {
		pt.Insert(pt.GetLength()/2, "X")
	}

	return pt
}

func BenchmarkPieceTableGetText(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pt.GetText()
	}
}

func BenchmarkPieceTableGetTextRange(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	length := pt.GetLength()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pt.GetTextRange(length/4, length/2)
	}
}

func BenchmarkPieceTableGetLength(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pt.GetLength()
	}
}

func BenchmarkPieceTableInsert(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		pt.Insert(pt.GetLength()/2, "z")
	}
}

func BenchmarkPieceTableDelete(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if pt.GetLength() == 0 {
			b.StopTimer()
			pt = setupLargePieceTable(b, 10000)
			b.StartTimer()
		}
		pt.Delete(pt.GetLength()/2, 1)
	}
}

func BenchmarkPieceTableOffsetToPosition(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	length := pt.GetLength()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pt.OffsetToPosition(length * 3 / 4)
	}
}

func BenchmarkPieceTablePositionToOffset(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pt.PositionToOffset(5000, 10)
	}
}

func BenchmarkPieceTableGetLine(b *testing.B) {
	pt := setupLargePieceTable(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pt.GetLine(5000)
	}
}
