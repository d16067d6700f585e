package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// EvalMultilinear folds the evaluation table vs of a multilinear polynomial
// down to its value at r. vs holds the evaluations over the boolean
// hypercube; coordinate j of r pairs with bit len(r)-1-j of the table index,
// the same convention subtable evaluation points use.
func EvalMultilinear(vs []fr.Element, r []fr.Element) fr.Element {
	if 1<<len(r) != len(vs) {
		panic("inconsistent length of evals and randomness in eval multi-linear")
	}

	scratch := make([]fr.Element, len(vs))
	copy(scratch, vs)

	// fold the low index bit first, so the last coordinate of r goes first
	size := len(vs)
	for k := len(r) - 1; k >= 0; k-- {
		size >>= 1
		for j := 0; j < size; j++ {
			var t fr.Element
			t.Sub(&scratch[2*j+1], &scratch[2*j])
			t.Mul(&t, &r[k])
			scratch[j].Add(&scratch[2*j], &t)
		}
	}
	return scratch[0]
}

// PrefoldedEqTable computes the prefolded eq bookkeeping table: entry x is
// eq(qPrime, x) for x ranging over the boolean hypercube, with qPrime[0]
// tied to the high index bit.
func PrefoldedEqTable(qPrime []fr.Element) []fr.Element {
	n := len(qPrime)
	foldedEqTable := make([]fr.Element, 1<<n)
	foldedEqTable[0].SetOne()

	for i, r := range qPrime {
		for j := 0; j < (1 << i); j++ {
			J := j << (n - i)
			JNext := J + 1<<(n-1-i)
			foldedEqTable[JNext].Mul(&r, &foldedEqTable[J])
			foldedEqTable[J].Sub(&foldedEqTable[J], &foldedEqTable[JNext])
		}
	}

	return foldedEqTable
}

// EvalEq computes eq(x, y) = prod_i (x_i y_i + (1 - x_i)(1 - y_i)) directly.
func EvalEq(x, y []fr.Element) fr.Element {
	if len(x) != len(y) {
		panic("eq operands must have the same number of variables")
	}

	var res, one fr.Element
	res.SetOne()
	one.SetOne()

	for i := range x {
		// (x_i y_i) + (1 - x_i)(1 - y_i) = 2 x_i y_i + 1 - x_i - y_i
		var t fr.Element
		t.Mul(&x[i], &y[i])
		t.Double(&t)
		t.Add(&t, &one)
		t.Sub(&t, &x[i])
		t.Sub(&t, &y[i])
		res.Mul(&res, &t)
	}
	return res
}
