package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmToPxRoundsToNearest(t *testing.T) {
	require.Equal(t, 25.0, MmToPx(5))
	require.Equal(t, 26.0, MmToPx(5.2))
	require.Equal(t, 16.0, MmToPx(3.2))
	require.Equal(t, 0.0, MmToPx(0))
}

func TestPxToMmRoundsToNearest(t *testing.T) {
	require.Equal(t, 5.0, PxToMm(25))
	require.Equal(t, 5.0, PxToMm(27)) // 5.4 rounds down
	require.Equal(t, 5.0, PxToMm(23)) // 4.6 rounds up
	require.Equal(t, 4.0, PxToMm(22))
}

func TestRoundTripPreservesWholeMillimeters(t *testing.T) {
	for mm := 0.0; mm <= 100; mm++ {
		require.Equal(t, mm, PxToMm(MmToPx(mm)))
	}
}

func TestMmToDots(t *testing.T) {
	require.Equal(t, 203, MmToDots(25.4, 203))
	require.Equal(t, 591, MmToDots(50, 300))
	require.Equal(t, 0, MmToDots(0, 300))
}

func TestSnapMm(t *testing.T) {
	require.Equal(t, 5.0, SnapMm(4.6))
	require.Equal(t, 4.0, SnapMm(4.4))
	require.Equal(t, -3.0, SnapMm(-3.2))
}
