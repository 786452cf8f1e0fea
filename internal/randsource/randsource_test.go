package randsource

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	data []byte
}

func (f *fixedSource) Read(p []byte) (int, error) {
	n := copy(p, f.data)
	return n, nil
}

type failingSource struct{}

func (failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestFillCopiesAllBytes(t *testing.T) {
	src := &fixedSource{data: []byte{1, 2, 3, 4, 5}}
	buf := make([]byte, 5)
	require.NoError(t, Fill(src, buf))
	assert.True(t, bytes.Equal([]byte{1, 2, 3, 4, 5}, buf))
}

func TestFillShortReadFails(t *testing.T) {
	src := &fixedSource{data: []byte{1, 2}}
	buf := make([]byte, 5)
	err := Fill(src, buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short read")
}

func TestFillPropagatesSourceError(t *testing.T) {
	buf := make([]byte, 4)
	err := Fill(failingSource{}, buf)
	require.Error(t, err)
}

func TestDefaultIsUsable(t *testing.T) {
	buf := make([]byte, 16)
	require.NoError(t, Fill(Default, buf))
}
