package fields

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBN254FieldEnum(t *testing.T) {
	require.Equal(t, ecc.BN254.ScalarField(), ECCBN254.FieldModulus())
	require.Equal(t, uint(fr.Bytes), ECCBN254.FieldBytes())
}

func TestFromUint64Embedding(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 200, 255, 1 << 32} {
		e := FromUint64(v)
		var expected fr.Element
		expected.SetBigInt(new(big.Int).SetUint64(v))
		require.True(t, expected.Equal(&e))
	}
}

func TestScalarToBytesCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	e := RandomScalar(rng)
	encoded := ScalarToBytes(&e)
	require.Len(t, encoded, fr.Bytes)

	// encoding binds to the canonical value, not the limb representation
	var decoded fr.Element
	decoded.SetBytes(encoded)
	require.True(t, decoded.Equal(&e))
}

func TestRandomEvaluationPointLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	require.Len(t, RandomEvaluationPoint(rng, 8), 8)
}
