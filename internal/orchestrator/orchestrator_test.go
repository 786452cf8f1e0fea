package orchestrator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/shardctl/shardctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededSource(t *testing.T, seed int64) *testutil.RandSource {
	t.Helper()
	t.Logf("orchestrator test seed: %d", seed)
	return testutil.NewRandSource(seed)
}

func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	log := zap.NewNop()
	secret := "correct horse battery staple"

	var encoded bytes.Buffer
	err := Encode(strings.NewReader(secret), &encoded, EncodeOptions{
		K: 3, N: 5, WithChecksum: true, RandomSource: newSeededSource(t, 42),
	}, log)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(encoded.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	var decoded bytes.Buffer
	input := strings.Join(lines[:3], "\n") + "\n"
	err = Decode(strings.NewReader(input), &decoded, log)
	require.NoError(t, err)
	assert.Equal(t, secret, decoded.String())
}

func TestEncodeRejectsOversizedSecret(t *testing.T) {
	log := zap.NewNop()
	oversized := bytes.Repeat([]byte{0x01}, MaxSecretBytes+1)

	var out bytes.Buffer
	err := Encode(bytes.NewReader(oversized), &out, EncodeOptions{
		K: 2, N: 3, RandomSource: newSeededSource(t, 1),
	}, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSecretTooLarge)
}

func TestEncodeAcceptsExactlyMaxSizedSecret(t *testing.T) {
	log := zap.NewNop()
	exact := bytes.Repeat([]byte{0x02}, MaxSecretBytes)

	var out bytes.Buffer
	err := Encode(bytes.NewReader(exact), &out, EncodeOptions{
		K: 2, N: 3, RandomSource: newSeededSource(t, 2),
	}, log)
	require.NoError(t, err)
}

func TestDecodeFailsWhenNotEnoughShares(t *testing.T) {
	log := zap.NewNop()
	var encoded bytes.Buffer
	err := Encode(strings.NewReader("hi"), &encoded, EncodeOptions{
		K: 3, N: 5, WithChecksum: true, RandomSource: newSeededSource(t, 3),
	}, log)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(encoded.String(), "\n"), "\n")
	input := strings.Join(lines[:2], "\n") + "\n"

	var decoded bytes.Buffer
	err = Decode(strings.NewReader(input), &decoded, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughShares)
}

func TestDecodeEmptyInput(t *testing.T) {
	log := zap.NewNop()
	var decoded bytes.Buffer
	err := Decode(strings.NewReader(""), &decoded, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughShares)
}

type failingSource struct{}

func (failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestEncodeReportsRandomFailure(t *testing.T) {
	log := zap.NewNop()
	var out bytes.Buffer
	err := Encode(strings.NewReader("hi"), &out, EncodeOptions{
		K: 2, N: 3, RandomSource: failingSource{},
	}, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRandomFailure)
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	log := zap.NewNop()
	var encoded bytes.Buffer
	err := Encode(strings.NewReader("x"), &encoded, EncodeOptions{
		K: 2, N: 2, WithChecksum: true, RandomSource: newSeededSource(t, 4),
	}, log)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(encoded.String(), "\n"), "\n")
	input := lines[0] + "\n\n  \n" + lines[1] + "\n"

	var decoded bytes.Buffer
	err = Decode(strings.NewReader(input), &decoded, log)
	require.NoError(t, err)
	assert.Equal(t, "x", decoded.String())
}
