package trace

import (
	"bytes"
	"fmt"
)

// RowKind tags the transcript call a Row records.
type RowKind uint

const (
	// ChallengeScalarRow records a single labeled challenge derivation
	ChallengeScalarRow RowKind = iota
	// ChallengeVectorRow records a labeled vector challenge derivation
	ChallengeVectorRow
	// AppendedMessageRow records a raw labeled byte absorption
	AppendedMessageRow
	// AppendedU64Row records a labeled integer absorption
	AppendedU64Row
	// AppendedBytesRow records a labeled absorption of serialized field or
	// group data, covering scalar, scalar-vector, point and point-vector
	// appends
	AppendedBytesRow
)

func (k RowKind) String() string {
	switch k {
	case ChallengeScalarRow:
		return "ChallengeScalar"
	case ChallengeVectorRow:
		return "ChallengeVector"
	case AppendedMessageRow:
		return "AppendedMessage"
	case AppendedU64Row:
		return "AppendedU64"
	case AppendedBytesRow:
		return "AppendedBytes"
	default:
		panic("unknown transcript row kind")
	}
}

// Row is the immutable record of one transcript call. Challenge rows do not
// carry the derived values: replay recomputes them through the real sponge,
// so equality of call sequences implies equality of challenges.
type Row struct {
	Kind  RowKind
	Label string

	// Bytes carries the absorbed payload for AppendedMessage and
	// AppendedBytes rows
	Bytes []byte

	// Value carries the absorbed integer for AppendedU64 rows
	Value uint64

	// Len carries the requested length for ChallengeVector rows
	Len int
}

func (r *Row) Equal(other *Row) bool {
	return r.Kind == other.Kind &&
		r.Label == other.Label &&
		bytes.Equal(r.Bytes, other.Bytes) &&
		r.Value == other.Value &&
		r.Len == other.Len
}

func (r *Row) String() string {
	switch r.Kind {
	case ChallengeVectorRow:
		return fmt.Sprintf("%s(%q, %d)", r.Kind, r.Label, r.Len)
	case AppendedU64Row:
		return fmt.Sprintf("%s(%q, %d)", r.Kind, r.Label, r.Value)
	case AppendedMessageRow, AppendedBytesRow:
		return fmt.Sprintf("%s(%q, %x)", r.Kind, r.Label, r.Bytes)
	default:
		return fmt.Sprintf("%s(%q)", r.Kind, r.Label)
	}
}

type logState uint

const (
	writeState logState = iota
	readState
)

// Log is the two-state transcript call log. A fresh Log records rows in
// write state; Replay derives an independent read-state copy whose cursor
// must retrace the captured rows one call at a time.
type Log struct {
	state  logState
	rows   []Row
	cursor int
}

// NewLog starts an empty write-state log.
func NewLog() *Log {
	return &Log{state: writeState}
}

// Append records row in write state. In read state it instead asserts that
// row equals the captured row under the cursor and advances by exactly one;
// a mismatch is a structural bug in the calling protocol and panics.
func (l *Log) Append(row Row) {
	switch l.state {
	case writeState:
		l.rows = append(l.rows, row)
	case readState:
		if l.cursor >= len(l.rows) {
			panic(fmt.Sprintf("transcript replay ran past the %d captured rows with %s", len(l.rows), row.String()))
		}
		if !l.rows[l.cursor].Equal(&row) {
			panic(fmt.Sprintf("transcript replay mismatch at row %d: captured %s, got %s",
				l.cursor, l.rows[l.cursor].String(), row.String()))
		}
		l.cursor++
	}
}

// Replay clones the captured rows into a fresh read-state log with the
// cursor reset. The clone shares no mutable state with l.
func (l *Log) Replay() *Log {
	rows := make([]Row, len(l.rows))
	copy(rows, l.rows)
	return &Log{state: readState, rows: rows}
}

// AssertComplete panics unless a read-state log has been driven through
// every captured row. It catches short replays that individual row checks
// cannot. No-op in write state.
func (l *Log) AssertComplete() {
	if l.state != readState {
		return
	}
	if l.cursor != len(l.rows) {
		panic(fmt.Sprintf("transcript replay stopped at row %d of %d", l.cursor, len(l.rows)))
	}
}

// Rows returns a copy of the captured rows, for inspection and golden-trace
// dumps.
func (l *Log) Rows() []Row {
	rows := make([]Row, len(l.rows))
	copy(rows, l.rows)
	return rows
}
