package fraction

import (
	"testing"
)

var (
	benchFraction1 = New[int64](355, 113)
	benchFraction2 = New[int64](-22, 7)

	benchFractionResult Fraction[int64]
	benchIntResult      int
	benchStringResult   string
	benchErrResult      error
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult = New[int64](int64(i)*6, 8)
	}
}

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult = benchFraction1.Add(benchFraction2)
	}
}

func BenchmarkCheckedAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult, benchErrResult = benchFraction1.CheckedAdd(benchFraction2)
	}
}

func BenchmarkMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult = benchFraction1.Mul(benchFraction2)
	}
}

func BenchmarkDiv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult = benchFraction1.Div(benchFraction2)
	}
}

func BenchmarkCmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchIntResult = benchFraction1.Cmp(benchFraction2)
	}
}

func BenchmarkString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchStringResult = benchFraction1.String()
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult, benchErrResult = FromFloat64[int64](3.14159)
	}
}
