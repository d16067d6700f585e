package fields

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/exp/rand"
)

// ECCFieldEnum is the enum value indicating the scalar field the Lasso
// argument is instantiated over.
type ECCFieldEnum uint64

const (
	// ECCBN254 is the ECCFieldEnum for the BN254 scalar field
	ECCBN254 ECCFieldEnum = iota
)

// FieldModulus finds the modulus for the scalar field tied to the field enum
func (f ECCFieldEnum) FieldModulus() *big.Int {
	switch f {
	case ECCBN254:
		return fr.Modulus()
	default:
		panic("unknown ECC field enum")
	}
}

// FieldBytes stand for the number of bytes of the scalar field modulus
// tied to the field enum
func (f ECCFieldEnum) FieldBytes() uint {
	bitLen := f.FieldModulus().BitLen()
	// NOTE: round up against bit-byte rate
	return (uint(bitLen) + 8 - 1) / 8
}

// FromUint64 embeds an unsigned integer into the scalar field.
// This is the canonical index embedding used by subtable materialization.
func FromUint64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// ScalarToBytes returns the canonical fixed-width big-endian encoding of a
// scalar, the byte form a Fiat-Shamir sponge binds to. It is independent of
// the in-memory (Montgomery) representation.
func ScalarToBytes(e *fr.Element) []byte {
	b := e.Bytes()
	return b[:]
}

// PointToBytes returns the canonical compressed encoding of a G1 point.
func PointToBytes(p *bn254.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

// RandomScalar draws a scalar from rng, for test vectors only
func RandomScalar(rng *rand.Rand) fr.Element {
	var buf [fr.Bytes]byte
	rng.Read(buf[:])

	var e fr.Element
	e.SetBytes(buf[:])
	return e
}

// RandomEvaluationPoint draws an m-coordinate MLE evaluation point from rng,
// for test vectors only
func RandomEvaluationPoint(rng *rand.Rand, m int) []fr.Element {
	point := make([]fr.Element, m)
	for i := range point {
		point[i] = RandomScalar(rng)
	}
	return point
}
