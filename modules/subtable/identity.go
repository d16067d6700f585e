package subtable

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"LassoCoreCircuit/modules/fields"
)

// Identity is the subtable of the identity function f(i) = i. Its MLE has a
// closed form: the binary-weighted sum of the index bits is already
// multilinear in every bit coordinate, so no hypercube sum is needed.
type Identity struct{}

func (Identity) Materialize(size int) []fr.Element {
	evals := make([]fr.Element, size)
	for i := range evals {
		evals[i] = fields.FromUint64(uint64(i))
	}
	return evals
}

// EvaluateMLE computes sum_k 2^k * point[m-1-k], folded MSB-first so the
// running weight never leaves the field.
func (Identity) EvaluateMLE(point []fr.Element) fr.Element {
	var result fr.Element
	for j := range point {
		result.Double(&result)
		result.Add(&result, &point[j])
	}
	return result
}
