package polynomial_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"LassoCoreCircuit/modules/fields"
	"LassoCoreCircuit/modules/polynomial"
	"LassoCoreCircuit/modules/subtable"
)

func TestEvalMultilinearOnHypercube(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	m := 5
	vs := make([]fr.Element, 1<<m)
	for i := range vs {
		vs[i] = fields.RandomScalar(rng)
	}

	// folding at a boolean point is a table lookup
	for i := 0; i < 1<<m; i++ {
		point := subtable.IndexToPoint(uint64(i), m)
		got := polynomial.EvalMultilinear(vs, point)
		require.True(t, got.Equal(&vs[i]), "fold at boolean point %d is not a lookup", i)
	}
}

func TestEvalMultilinearLengthMismatch(t *testing.T) {
	vs := make([]fr.Element, 8)
	r := make([]fr.Element, 2)
	require.Panics(t, func() { polynomial.EvalMultilinear(vs, r) })
}

func TestPrefoldedEqTableAgainstDirectEval(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	n := 6
	qPrime := fields.RandomEvaluationPoint(rng, n)
	eqTable := polynomial.PrefoldedEqTable(qPrime)
	require.Len(t, eqTable, 1<<n)

	for x := 0; x < 1<<n; x++ {
		direct := polynomial.EvalEq(qPrime, subtable.IndexToPoint(uint64(x), n))
		require.True(t, eqTable[x].Equal(&direct), "eq table disagrees at %d", x)
	}
}

func TestEvalEqOnBooleanPoints(t *testing.T) {
	n := 4
	for x := 0; x < 1<<n; x++ {
		for y := 0; y < 1<<n; y++ {
			got := polynomial.EvalEq(
				subtable.IndexToPoint(uint64(x), n),
				subtable.IndexToPoint(uint64(y), n),
			)
			if x == y {
				require.True(t, got.IsOne())
			} else {
				require.True(t, got.IsZero())
			}
		}
	}
}
