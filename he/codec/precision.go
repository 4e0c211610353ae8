package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// ExactPrecision is the precision in bits reported for values decoded
// without error, the precision of a float64.
const ExactPrecision = 53

// PrecisionStats is a struct storing statistics about the precision, in
// bits, of decoded fixed-point values.
type PrecisionStats struct {
	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
	StdPrecision    float64

	MaxDelta  float64
	MeanDelta float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────┐
│    Log2 │ PREC  │
├─────────┼───────┤
│MIN Prec │ %5.2f │
│MAX Prec │ %5.2f │
│AVG Prec │ %5.2f │
│MED Prec │ %5.2f │
│STD Prec │ %5.2f │
└─────────┴───────┘
`,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		prec.StdPrecision)
}

// GetPrecisionStats compares the decoded values have with the reference
// values want. The precision of a value is -log2|want - have|, capped at
// [ExactPrecision]. The method panics if the slices have different lengths
// and returns the zero PrecisionStats on empty slices.
func GetPrecisionStats(want, have []float64) (prec PrecisionStats) {

	if len(want) != len(have) {
		// Sanity check
		panic(fmt.Errorf("cannot GetPrecisionStats: len(want)=%d != len(have)=%d", len(want), len(have)))
	}

	if len(want) == 0 {
		return
	}

	precs := make(stats.Float64Data, len(want))
	deltas := make(stats.Float64Data, len(want))

	for i := range want {
		deltas[i] = math.Abs(want[i] - have[i])
		precs[i] = deltaToPrecision(deltas[i])
	}

	prec.MinPrecision, _ = precs.Min()
	prec.MaxPrecision, _ = precs.Max()
	prec.MeanPrecision, _ = precs.Mean()
	prec.MedianPrecision, _ = precs.Median()
	prec.StdPrecision, _ = precs.StandardDeviation()
	prec.MaxDelta, _ = deltas.Max()
	prec.MeanDelta, _ = deltas.Mean()

	return
}

func deltaToPrecision(delta float64) float64 {
	if delta == 0 {
		return ExactPrecision
	}
	return math.Min(-math.Log2(delta), ExactPrecision)
}

// PrecisionBits returns -log2|want - have| computed at the precision of
// want, or the precision of want if both values are equal.
func PrecisionBits(want, have *big.Float) float64 {

	delta := new(big.Float).SetPrec(want.Prec()).Sub(want, have)
	delta.Abs(delta)

	if delta.Sign() == 0 {
		return float64(want.Prec())
	}

	lg, _ := bignum.Log2Of(delta).Float64()

	return -lg
}
