package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	var k Kind[uint8] = Scalar[uint8]{}

	m, err := k.Marker(2)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), m)

	n, err := k.Count(m)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	_, err = k.Marker(300)
	assert.Error(t, err)
}

func TestScalarFloat(t *testing.T) {
	k := Scalar[float32]{}

	m, err := k.Marker(7)
	require.NoError(t, err)
	assert.Equal(t, float32(7), m)

	_, err = k.Count(1.5)
	assert.Error(t, err)
}

func TestPairKind(t *testing.T) {
	k := PairKind[uint8, int8]{}

	m, err := k.Marker(3)
	require.NoError(t, err)
	assert.Equal(t, MakePair[uint8, int8](3, 3), m)

	n, err := k.Count(m)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	t.Run("field overflow", func(t *testing.T) {
		_, err := k.Marker(200)
		assert.Error(t, err)
	})

	t.Run("inconsistent fields", func(t *testing.T) {
		_, err := k.Count(MakePair[uint8, int8](3, 4))
		assert.Error(t, err)
	})

	t.Run("equality is field-wise", func(t *testing.T) {
		assert.True(t, MakePair[uint8, int8](1, 1) == MakePair[uint8, int8](1, 1))
		assert.False(t, MakePair[uint8, int8](1, 1) == MakePair[uint8, int8](1, 2))
	})
}

func TestTripleKind(t *testing.T) {
	k := TripleKind[uint16, int32, float64]{}

	m, err := k.Marker(5)
	require.NoError(t, err)
	assert.Equal(t, MakeTriple[uint16, int32, float64](5, 5, 5), m)
	assert.Equal(t, "(5, 5, 5)", m.String())

	n, err := k.Count(m)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)

	_, err = k.Count(MakeTriple[uint16, int32, float64](5, 5, 6))
	assert.Error(t, err)
}
