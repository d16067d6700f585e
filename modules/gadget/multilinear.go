package gadget

import (
	"github.com/consensys/gnark/frontend"
)

// EvalMultilinear folds the hypercube evaluations vs of a multilinear
// polynomial down to its value at r, in-circuit. Same index convention as
// the native polynomial package: coordinate j of r pairs with bit
// len(r)-1-j of the table index.
func EvalMultilinear(
	api frontend.API,
	vs []frontend.Variable,
	r []frontend.Variable,
) frontend.Variable {
	if 1<<len(r) != len(vs) {
		panic("inconsistent length of evals and randomness in eval multi-linear")
	}

	scratch := make([]frontend.Variable, len(vs))
	copy(scratch, vs)

	size := len(vs)
	for k := len(r) - 1; k >= 0; k-- {
		size >>= 1
		for j := 0; j < size; j++ {
			scratch[j] = api.Add(
				scratch[2*j],
				api.Mul(api.Sub(scratch[2*j+1], scratch[2*j]), r[k]),
			)
		}
	}
	return scratch[0]
}

// IdentityMLE evaluates the identity subtable's closed-form MLE in-circuit:
// sum_k 2^k * point[m-1-k], folded MSB-first.
func IdentityMLE(api frontend.API, point []frontend.Variable) frontend.Variable {
	result := frontend.Variable(0)
	for j := range point {
		result = api.Add(result, result, point[j])
	}
	return result
}
