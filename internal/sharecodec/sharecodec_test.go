package sharecodec

import (
	"testing"

	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	line := Encode(3, 7, data, true)

	acc := NewAccumulator()
	acc.Add(Encode(3, 1, []byte{9, 9, 9, 9, 9}, true))
	done, err := acc.Add(line)
	require.NoError(t, err)
	assert.False(t, done)

	shares := acc.Shares()
	require.Len(t, shares, 2)
	assert.Equal(t, byte(7), shares[1].X)
	assert.Equal(t, data, shares[1].Data)
}

func TestEncodeWithoutChecksumHasThreeSegments(t *testing.T) {
	line := Encode(2, 1, []byte("hi"), false)
	assert.Equal(t, "2-1-aGk", line)
	acc := NewAccumulator()
	acc.Add(line)
	require.Len(t, acc.Shares(), 1)
}

func TestAccumulatorStopsAtThreshold(t *testing.T) {
	acc := NewAccumulator()
	data := []byte{0xAA}
	done1, err := acc.Add(Encode(2, 1, data, true))
	require.NoError(t, err)
	assert.False(t, done1)

	done2, err := acc.Add(Encode(2, 2, data, true))
	require.NoError(t, err)
	assert.True(t, done2)
	assert.True(t, acc.Done())
}

func TestAccumulatorDedupsByX(t *testing.T) {
	acc := NewAccumulator()
	data := []byte{1, 2}
	_, err := acc.Add(Encode(2, 1, data, true))
	require.NoError(t, err)
	done, err := acc.Add(Encode(2, 1, data, true))
	require.NoError(t, err)
	assert.False(t, done)
	assert.Len(t, acc.Shares(), 1)
}

func TestAccumulatorSkipsBlankLines(t *testing.T) {
	acc := NewAccumulator()
	done, err := acc.Add("   ")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, acc.Shares())
}

func TestAccumulatorRejectsWrongSegmentCount(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Add("1-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrShareParse)
}

func TestAccumulatorRejectsBadChecksum(t *testing.T) {
	line := Encode(2, 1, []byte{1, 2, 3}, true)
	tampered := line[:len(line)-1] + "z"
	acc := NewAccumulator()
	_, err := tamperAdd(acc, tampered)
	require.Error(t, err)
}

func tamperAdd(acc *Accumulator, line string) (bool, error) {
	return acc.Add(line)
}

func TestAccumulatorRejectsIncompatibleK(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Add(Encode(2, 1, []byte{1, 2}, true))
	require.NoError(t, err)
	_, err = acc.Add(Encode(3, 2, []byte{1, 2}, true))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIncompatibleShares)
}

func TestAccumulatorRejectsIncompatibleLength(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Add(Encode(2, 1, []byte{1, 2}, true))
	require.NoError(t, err)
	_, err = acc.Add(Encode(2, 2, []byte{1, 2, 3}, true))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIncompatibleShares)
}

func TestAccumulatorRejectsShortChecksumSegment(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Add("2-1-AQID-AQI")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrShareParse)
}

func TestAccumulatorRejectsOutOfRangeIndex(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Add("0-1-AQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrShareParse)
}
