package gadget_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"LassoCoreCircuit/modules/fields"
	"LassoCoreCircuit/modules/gadget"
	"LassoCoreCircuit/modules/polynomial"
	"LassoCoreCircuit/modules/subtable"
)

func toVariables(es []fr.Element) []frontend.Variable {
	vs := make([]frontend.Variable, len(es))
	for i := range es {
		vs[i] = es[i].BigInt(new(big.Int))
	}
	return vs
}

type IdentityMLECircuit struct {
	Point    []frontend.Variable
	Expected frontend.Variable
}

func (c *IdentityMLECircuit) Define(api frontend.API) error {
	api.AssertIsEqual(gadget.IdentityMLE(api, c.Point), c.Expected)
	return nil
}

func TestIdentityMLEGadgetMatchesNative(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	m := 8

	circuit := IdentityMLECircuit{Point: make([]frontend.Variable, m)}
	cs, err := frontend.Compile(fields.ECCBN254.FieldModulus(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err, "ggs compile circuit error")

	point := fields.RandomEvaluationPoint(rng, m)
	native := subtable.Identity{}.EvaluateMLE(point)

	assignment := IdentityMLECircuit{
		Point:    toVariables(point),
		Expected: native.BigInt(new(big.Int)),
	}
	witness, err := frontend.NewWitness(&assignment, fields.ECCBN254.FieldModulus())
	require.NoError(t, err, "ggs solving witness error")

	require.NoError(t, cs.IsSolved(witness), "in-circuit identity MLE disagrees with native")
}

type EvalMultilinearCircuit struct {
	Vs       []frontend.Variable
	R        []frontend.Variable
	Expected frontend.Variable
}

func (c *EvalMultilinearCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(gadget.EvalMultilinear(api, c.Vs, c.R), c.Expected)
	return nil
}

func TestEvalMultilinearGadgetMatchesNative(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	m := 4

	circuit := EvalMultilinearCircuit{
		Vs: make([]frontend.Variable, 1<<m),
		R:  make([]frontend.Variable, m),
	}
	cs, err := frontend.Compile(fields.ECCBN254.FieldModulus(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err, "ggs compile circuit error")

	vs := make([]fr.Element, 1<<m)
	for i := range vs {
		vs[i] = fields.RandomScalar(rng)
	}
	r := fields.RandomEvaluationPoint(rng, m)
	native := polynomial.EvalMultilinear(vs, r)

	assignment := EvalMultilinearCircuit{
		Vs:       toVariables(vs),
		R:        toVariables(r),
		Expected: native.BigInt(new(big.Int)),
	}
	witness, err := frontend.NewWitness(&assignment, fields.ECCBN254.FieldModulus())
	require.NoError(t, err, "ggs solving witness error")

	require.NoError(t, cs.IsSolved(witness), "in-circuit multilinear fold disagrees with native")
}

type TranscriptDeterminismCircuit struct {
	Input []frontend.Variable
}

func (c *TranscriptDeterminismCircuit) Define(api frontend.API) error {
	tr1, err := gadget.NewTranscript(api)
	if err != nil {
		return err
	}
	tr2, err := gadget.NewTranscript(api)
	if err != nil {
		return err
	}

	tr1.AppendFs(c.Input...)
	tr2.AppendFs(c.Input...)

	// identical drives derive identical challenges
	api.AssertIsEqual(tr1.ChallengeF(), tr2.ChallengeF())

	// a repeated squeeze advances the state
	api.AssertIsDifferent(tr1.ChallengeF(), tr2.ChallengeFs(2)[1])
	return nil
}

func TestTranscriptGadgetDeterminism(t *testing.T) {
	circuit := TranscriptDeterminismCircuit{Input: make([]frontend.Variable, 5)}
	cs, err := frontend.Compile(fields.ECCBN254.FieldModulus(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err, "ggs compile circuit error")

	assignment := TranscriptDeterminismCircuit{
		Input: []frontend.Variable{1, 2, 3, 4, 5},
	}
	witness, err := frontend.NewWitness(&assignment, fields.ECCBN254.FieldModulus())
	require.NoError(t, err, "ggs solving witness error")

	require.NoError(t, cs.IsSolved(witness))
}
