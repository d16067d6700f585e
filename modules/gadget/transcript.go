package gadget

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Transcript is the recursion-side Fiat-Shamir transcript: the in-circuit
// mirror of the native ProofTranscript, driven by a Lasso verifier circuit
// over the prover messages carried in the witness. Absorbed variables pool
// up until the next challenge, which hashes pool and running state through
// the MiMC sponge.
type Transcript struct {
	api frontend.API

	// The hash function
	hasher hash.FieldHasher

	// The values to feed the hash function
	dataPool []frontend.Variable

	// The running sponge state
	state frontend.Variable
}

// NewTranscript builds an in-circuit transcript over a fresh MiMC sponge.
func NewTranscript(api frontend.API) (*Transcript, error) {
	mimcHasher, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		api:    api,
		hasher: &mimcHasher,
		state:  0,
	}, nil
}

// AppendF absorbs one variable into the data pool.
func (t *Transcript) AppendF(f frontend.Variable) {
	t.dataPool = append(t.dataPool, f)
}

// AppendFs absorbs a batch of variables in order.
func (t *Transcript) AppendFs(fs ...frontend.Variable) {
	t.dataPool = append(t.dataPool, fs...)
}

// ChallengeF squeezes one challenge: the sponge digests the running state
// followed by everything absorbed since the previous challenge. Calling it
// twice in a row yields distinct values, the state alone is re-digested.
func (t *Transcript) ChallengeF() frontend.Variable {
	t.hasher.Reset()
	t.hasher.Write(t.state)
	t.hasher.Write(t.dataPool...)
	t.dataPool = t.dataPool[:0]

	t.state = t.hasher.Sum()
	return t.state
}

// ChallengeFs squeezes n challenges in sequence.
func (t *Transcript) ChallengeFs(n int) []frontend.Variable {
	cs := make([]frontend.Variable, n)
	for i := range cs {
		cs[i] = t.ChallengeF()
	}
	return cs
}
