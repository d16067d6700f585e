package trace

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"LassoCoreCircuit/modules/fields"
	"LassoCoreCircuit/modules/transcript"
)

// ScriptedTranscript is the second harness variant: challenges are served
// from pre-seeded responses by sequential lookup, independent of any real
// sponge, while the call log is still recorded and replay-checked. Unit
// tests that need fixed challenge values use this; tests that need the real
// derivation use RecordingTranscript. The two designs are deliberately not
// merged.
type ScriptedTranscript struct {
	scalars   []fr.Element
	scalarIdx int

	vectors   [][]fr.Element
	vectorIdx int

	log *Log
}

var _ transcript.ProofTranscript = (*ScriptedTranscript)(nil)

// NewScriptedTranscript seeds a write-mode scripted transcript with the
// scalar and vector challenge responses it will serve, in order.
func NewScriptedTranscript(scalars []fr.Element, vectors [][]fr.Element) *ScriptedTranscript {
	return &ScriptedTranscript{
		scalars: scalars,
		vectors: vectors,
		log:     NewLog(),
	}
}

// Replay derives a read-mode scripted transcript serving the same seeded
// responses from the start, with the captured log cloned and its cursor
// reset.
func (t *ScriptedTranscript) Replay() *ScriptedTranscript {
	scalars := make([]fr.Element, len(t.scalars))
	copy(scalars, t.scalars)

	vectors := make([][]fr.Element, len(t.vectors))
	for i := range vectors {
		vectors[i] = make([]fr.Element, len(t.vectors[i]))
		copy(vectors[i], t.vectors[i])
	}

	return &ScriptedTranscript{
		scalars: scalars,
		vectors: vectors,
		log:     t.log.Replay(),
	}
}

// AssertComplete checks the end-of-transcript condition on a replaying
// transcript.
func (t *ScriptedTranscript) AssertComplete() {
	t.log.AssertComplete()
}

// Rows exposes the captured rows.
func (t *ScriptedTranscript) Rows() []Row {
	return t.log.Rows()
}

func (t *ScriptedTranscript) AppendProtocolName(name []byte) {
	t.log.Append(Row{Kind: AppendedMessageRow, Label: "protocol-name", Bytes: name})
}

func (t *ScriptedTranscript) AppendMessage(label, msg []byte) {
	t.log.Append(Row{Kind: AppendedMessageRow, Label: string(label), Bytes: msg})
}

func (t *ScriptedTranscript) AppendU64(label []byte, v uint64) {
	t.log.Append(Row{Kind: AppendedU64Row, Label: string(label), Value: v})
}

func (t *ScriptedTranscript) AppendScalar(label []byte, scalar *fr.Element) {
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: fields.ScalarToBytes(scalar)})
}

func (t *ScriptedTranscript) AppendScalars(label []byte, scalars []fr.Element) {
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: scalarPayload(scalars)})
}

func (t *ScriptedTranscript) AppendPoint(label []byte, point *bn254.G1Affine) {
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: fields.PointToBytes(point)})
}

func (t *ScriptedTranscript) AppendPoints(label []byte, points []bn254.G1Affine) {
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: pointPayload(points)})
}

func (t *ScriptedTranscript) ChallengeScalar(label []byte) fr.Element {
	if t.scalarIdx >= len(t.scalars) {
		panic("scripted transcript ran out of seeded scalar responses")
	}
	res := t.scalars[t.scalarIdx]
	t.scalarIdx++

	t.log.Append(Row{Kind: ChallengeScalarRow, Label: string(label)})
	return res
}

func (t *ScriptedTranscript) ChallengeVector(label []byte, n int) []fr.Element {
	if t.vectorIdx >= len(t.vectors) {
		panic("scripted transcript ran out of seeded vector responses")
	}
	res := t.vectors[t.vectorIdx]
	if len(res) != n {
		panic(fmt.Sprintf("seeded vector response %d has %d elements, caller asked for %d",
			t.vectorIdx, len(res), n))
	}
	t.vectorIdx++

	t.log.Append(Row{Kind: ChallengeVectorRow, Label: string(label), Len: n})

	out := make([]fr.Element, n)
	copy(out, res)
	return out
}
