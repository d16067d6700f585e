package transcript

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/gtank/merlin"

	"LassoCoreCircuit/modules/fields"
)

var (
	protocolNameLabel = []byte("protocol-name")
	beginVectorMarker = []byte("begin_append_vector")
	endVectorMarker   = []byte("end_append_vector")
)

// challengeBytes is how many uniform sponge bytes back one scalar challenge.
// Twice the field size keeps the modular reduction bias negligible.
const challengeBytes = 2 * fr.Bytes

// MerlinTranscript is the production ProofTranscript, a thin adapter over
// the Merlin STROBE-based transcript. Merlin supplies the deterministic,
// one-way, label-respecting sponge; this adapter fixes the byte contract
// for scalars, points and vectors.
type MerlinTranscript struct {
	inner *merlin.Transcript
}

var _ ProofTranscript = (*MerlinTranscript)(nil)

// NewMerlinTranscript starts a fresh transcript under the given application
// label.
func NewMerlinTranscript(label string) *MerlinTranscript {
	return &MerlinTranscript{inner: merlin.NewTranscript(label)}
}

func (t *MerlinTranscript) AppendProtocolName(name []byte) {
	t.inner.AppendMessage(protocolNameLabel, name)
}

func (t *MerlinTranscript) AppendMessage(label, msg []byte) {
	t.inner.AppendMessage(label, msg)
}

func (t *MerlinTranscript) AppendU64(label []byte, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	t.inner.AppendMessage(label, buf[:])
}

func (t *MerlinTranscript) AppendScalar(label []byte, scalar *fr.Element) {
	t.inner.AppendMessage(label, fields.ScalarToBytes(scalar))
}

func (t *MerlinTranscript) AppendScalars(label []byte, scalars []fr.Element) {
	t.inner.AppendMessage(label, beginVectorMarker)
	for i := range scalars {
		t.AppendScalar(label, &scalars[i])
	}
	t.inner.AppendMessage(label, endVectorMarker)
}

func (t *MerlinTranscript) AppendPoint(label []byte, point *bn254.G1Affine) {
	t.inner.AppendMessage(label, fields.PointToBytes(point))
}

func (t *MerlinTranscript) AppendPoints(label []byte, points []bn254.G1Affine) {
	t.inner.AppendMessage(label, beginVectorMarker)
	for i := range points {
		t.AppendPoint(label, &points[i])
	}
	t.inner.AppendMessage(label, endVectorMarker)
}

func (t *MerlinTranscript) ChallengeScalar(label []byte) fr.Element {
	var e fr.Element
	e.SetBytes(t.inner.ExtractBytes(label, challengeBytes))
	return e
}

func (t *MerlinTranscript) ChallengeVector(label []byte, n int) []fr.Element {
	challenges := make([]fr.Element, n)
	for i := range challenges {
		challenges[i] = t.ChallengeScalar(label)
	}
	return challenges
}
