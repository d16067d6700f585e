package trace

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"LassoCoreCircuit/modules/fields"
	"LassoCoreCircuit/modules/transcript"
)

// RecordingTranscript is a recording proxy over the production transcript:
// every call performs the real deterministic operation and logs a Row
// describing it, in call order. Replaying the captured log against a second
// protocol drive enforces that both issue bit-for-bit identical operation
// sequences, not merely equal final challenges.
type RecordingTranscript struct {
	label string
	inner transcript.ProofTranscript
	log   *Log
}

var _ transcript.ProofTranscript = (*RecordingTranscript)(nil)

// NewRecordingTranscript starts a write-mode recording transcript over a
// fresh production transcript under label.
func NewRecordingTranscript(label string) *RecordingTranscript {
	return &RecordingTranscript{
		label: label,
		inner: transcript.NewMerlinTranscript(label),
		log:   NewLog(),
	}
}

// Replay derives a read-mode transcript from the rows captured so far: a
// cloned log with the cursor reset, over a freshly initialized production
// transcript. Challenge values are recomputed, not copied; sponge
// determinism guarantees a bit-for-bit match for an identical call
// sequence. The source transcript is untouched.
func (t *RecordingTranscript) Replay() *RecordingTranscript {
	return &RecordingTranscript{
		label: t.label,
		inner: transcript.NewMerlinTranscript(t.label),
		log:   t.log.Replay(),
	}
}

// AssertComplete checks the end-of-transcript condition on a replaying
// transcript: every captured row must have been retraced.
func (t *RecordingTranscript) AssertComplete() {
	t.log.AssertComplete()
}

// Rows exposes the captured rows for golden-trace inspection.
func (t *RecordingTranscript) Rows() []Row {
	return t.log.Rows()
}

func (t *RecordingTranscript) AppendProtocolName(name []byte) {
	t.inner.AppendProtocolName(name)
	t.log.Append(Row{Kind: AppendedMessageRow, Label: "protocol-name", Bytes: name})
}

func (t *RecordingTranscript) AppendMessage(label, msg []byte) {
	t.inner.AppendMessage(label, msg)
	t.log.Append(Row{Kind: AppendedMessageRow, Label: string(label), Bytes: msg})
}

func (t *RecordingTranscript) AppendU64(label []byte, v uint64) {
	t.inner.AppendU64(label, v)
	t.log.Append(Row{Kind: AppendedU64Row, Label: string(label), Value: v})
}

func (t *RecordingTranscript) AppendScalar(label []byte, scalar *fr.Element) {
	t.inner.AppendScalar(label, scalar)
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: fields.ScalarToBytes(scalar)})
}

func (t *RecordingTranscript) AppendScalars(label []byte, scalars []fr.Element) {
	t.inner.AppendScalars(label, scalars)
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: scalarPayload(scalars)})
}

func (t *RecordingTranscript) AppendPoint(label []byte, point *bn254.G1Affine) {
	t.inner.AppendPoint(label, point)
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: fields.PointToBytes(point)})
}

func (t *RecordingTranscript) AppendPoints(label []byte, points []bn254.G1Affine) {
	t.inner.AppendPoints(label, points)
	t.log.Append(Row{Kind: AppendedBytesRow, Label: string(label), Bytes: pointPayload(points)})
}

func (t *RecordingTranscript) ChallengeScalar(label []byte) fr.Element {
	challenge := t.inner.ChallengeScalar(label)
	t.log.Append(Row{Kind: ChallengeScalarRow, Label: string(label)})
	return challenge
}

func (t *RecordingTranscript) ChallengeVector(label []byte, n int) []fr.Element {
	challenges := t.inner.ChallengeVector(label, n)
	t.log.Append(Row{Kind: ChallengeVectorRow, Label: string(label), Len: n})
	return challenges
}

func scalarPayload(scalars []fr.Element) []byte {
	payload := make([]byte, 0, len(scalars)*fr.Bytes)
	for i := range scalars {
		payload = append(payload, fields.ScalarToBytes(&scalars[i])...)
	}
	return payload
}

func pointPayload(points []bn254.G1Affine) []byte {
	payload := make([]byte, 0, len(points)*bn254.SizeOfG1AffineCompressed)
	for i := range points {
		payload = append(payload, fields.PointToBytes(&points[i])...)
	}
	return payload
}
