package subtable

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// LassoSubtable is one decomposition unit of a Lasso lookup table. A large
// table over the full index space is assembled (outside this module) from C
// such subtables, each indexed by a chunk of the index bits.
//
// Implementations are stateless: one value per table kind, reused across
// arbitrarily many lookups.
type LassoSubtable interface {
	// Materialize returns the explicit table of size entries, entry i being
	// the subtable function evaluated at i, embedded into the scalar field.
	// size must be a power of two; the caller owns that precondition.
	Materialize(size int) []fr.Element

	// EvaluateMLE evaluates the multilinear extension of the materialized
	// table at point. Coordinate j of point pairs with bit m-1-j of the
	// table index, m being len(point). The point coordinates need not be
	// boolean.
	EvaluateMLE(point []fr.Element) fr.Element
}

// SubtableId tags the known subtable variants. The set is closed: dispatch
// is an exhaustive switch, not reflection.
type SubtableId uint

const (
	// IdentitySubtable is the SubtableId of the identity table f(i) = i
	IdentitySubtable SubtableId = iota
)

// New constructs the subtable variant tagged by id. Unknown ids are a
// structural caller bug.
func New(id SubtableId) LassoSubtable {
	switch id {
	case IdentitySubtable:
		return Identity{}
	default:
		panic("unknown subtable id")
	}
}

// IndexToPoint expands a table index into the m-coordinate boolean point of
// its bits, MSB first, so that coordinate j carries bit m-1-j. Evaluating a
// subtable MLE at this point reproduces the materialized entry at index.
func IndexToPoint(index uint64, m int) []fr.Element {
	point := make([]fr.Element, m)
	for j := 0; j < m; j++ {
		point[j].SetUint64((index >> (m - 1 - j)) & 1)
	}
	return point
}
