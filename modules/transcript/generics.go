package transcript

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ProofTranscript aligns with the prover runtime Fiat-Shamir transcript
// contract: absorb labeled prover messages, derive labeled verifier
// challenges deterministically from everything absorbed so far. Every label
// is a short static domain-separation tag unique to its call site.
//
// A transcript is a single mutable resource exclusively owned by the
// protocol step driving it. Every call mutates the absorption state, so
// challenge derivation is never idempotent and concurrent use from two
// branches would corrupt the total order soundness depends on.
type ProofTranscript interface {
	// AppendProtocolName binds the global protocol identifier. It must be
	// the first call on a fresh transcript.
	AppendProtocolName(name []byte)

	// AppendMessage absorbs raw bytes under label.
	AppendMessage(label, msg []byte)

	// AppendU64 absorbs an unsigned integer under label.
	AppendU64(label []byte, v uint64)

	// AppendScalar absorbs one scalar under label, after canonical
	// fixed-width serialization.
	AppendScalar(label []byte, scalar *fr.Element)

	// AppendScalars absorbs a scalar vector under label, bracketed with
	// begin/end markers so a length-L vector cannot be confused with L
	// independent scalar appends followed by unrelated data.
	AppendScalars(label []byte, scalars []fr.Element)

	// AppendPoint absorbs one G1 point under label, compressed form.
	AppendPoint(label []byte, point *bn254.G1Affine)

	// AppendPoints absorbs a point vector under label, bracketed like
	// AppendScalars.
	AppendPoints(label []byte, points []bn254.G1Affine)

	// ChallengeScalar derives one pseudorandom scalar from the absorbed
	// history plus label, advancing the transcript state.
	ChallengeScalar(label []byte) fr.Element

	// ChallengeVector derives exactly n pseudorandom scalars in one call.
	ChallengeVector(label []byte, n int) []fr.Element
}
