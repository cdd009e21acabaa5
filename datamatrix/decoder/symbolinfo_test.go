package decoder

import (
	"testing"

	symdecode "github.com/joshgraham/symdecode"
	"github.com/stretchr/testify/require"
)

func TestLookupSmallestSquare(t *testing.T) {
	v, err := Lookup(3, ShapeHintForceNone)
	require.NoError(t, err)
	require.Equal(t, 10, v.SymbolSizeColumns())
	require.Equal(t, 10, v.SymbolSizeRows())
	require.Equal(t, 8, v.DataRegionSizeColumns())
	require.Equal(t, 8, v.DataRegionSizeRows())
	require.Equal(t, 5, v.GetECBlocks().ECCodewords)
}

func TestLookupForceRectangle(t *testing.T) {
	v, err := Lookup(3, ShapeHintForceRectangle)
	require.NoError(t, err)
	require.Equal(t, 18, v.SymbolSizeColumns())
	require.Equal(t, 8, v.SymbolSizeRows())
	require.Equal(t, 16, v.DataRegionSizeColumns())
	require.Equal(t, 6, v.DataRegionSizeRows())
	require.Equal(t, 7, v.GetECBlocks().ECCodewords)
}

func TestLookupForceSquare(t *testing.T) {
	v, err := Lookup(9, ShapeHintForceSquare)
	require.NoError(t, err)
	require.Equal(t, 16, v.SymbolSizeColumns())
	require.Equal(t, 16, v.SymbolSizeRows())
	require.Equal(t, 14, v.DataRegionSizeColumns())
	require.Equal(t, 14, v.DataRegionSizeRows())
	require.Equal(t, 12, v.GetECBlocks().ECCodewords)
}

func TestLookupTooLarge(t *testing.T) {
	_, err := Lookup(1559, ShapeHintForceNone)
	require.ErrorIs(t, err, symdecode.ErrIllegalArgument)
}

func TestLookupBySizeKnown(t *testing.T) {
	v, err := LookupBySize(10, 10)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, 1, v.VersionNumber())
}

func TestLookupBySizeUnknown(t *testing.T) {
	v, err := LookupBySize(7, 7)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRectangularFlag(t *testing.T) {
	square, err := Lookup(3, ShapeHintForceSquare)
	require.NoError(t, err)
	require.False(t, square.Rectangular())

	rect, err := Lookup(3, ShapeHintForceRectangle)
	require.NoError(t, err)
	require.True(t, rect.Rectangular())
}
