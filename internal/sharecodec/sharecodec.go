// Package sharecodec encodes shares as text lines of the form
// "K-x-base64(data)[-base64(crc)]" and decodes a stream of such lines back
// into shares, accumulating until a threshold number of distinct shares has
// been seen.
package sharecodec

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/shardctl/shardctl/internal/checksum"
	"github.com/shardctl/shardctl/internal/shamir"
)

var b64 = base64.RawStdEncoding

// Encode renders one share line. When withChecksum is true a fourth,
// CRC-24 segment is appended.
func Encode(k int, x byte, data []byte, withChecksum bool) string {
	payload := b64.EncodeToString(data)
	if !withChecksum {
		return fmt.Sprintf("%d-%d-%s", k, x, payload)
	}
	sum := checksum.CRC24(byte(k), x, data)
	return fmt.Sprintf("%d-%d-%s-%s", k, x, payload, b64.EncodeToString(sum[:]))
}

// Accumulator consumes share lines one at a time and tracks which distinct
// x-coordinates have been accepted so far, stopping as soon as K of them
// have arrived.
type Accumulator struct {
	k      int
	length int
	haveKL bool
	seen   map[byte]bool
	shares []shamir.Share
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[byte]bool)}
}

// Done reports whether K distinct shares have been accepted.
func (a *Accumulator) Done() bool {
	return a.haveKL && len(a.shares) == a.k
}

// Shares returns the accepted shares once Done reports true.
func (a *Accumulator) Shares() []shamir.Share {
	return a.shares
}

// K returns the threshold fixed by the first accepted line. Only valid
// once at least one line has been accepted.
func (a *Accumulator) K() int {
	return a.k
}

// Add parses one line and, if it is well-formed and not a duplicate,
// folds it into the accumulator. Blank or whitespace-only lines are
// silently ignored and return (false, nil).
func (a *Accumulator) Add(line string) (bool, error) {
	if a.Done() {
		return true, nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) < 3 || len(parts) > 4 {
		return false, fmt.Errorf("%w: expected 3 or 4 segments separated by '-', got %d", apperrors.ErrShareParse, len(parts))
	}

	k, err := parseIndex(parts[0])
	if err != nil {
		return false, fmt.Errorf("%w: invalid K: %v", apperrors.ErrShareParse, err)
	}
	x, err := parseIndex(parts[1])
	if err != nil {
		return false, fmt.Errorf("%w: invalid x: %v", apperrors.ErrShareParse, err)
	}

	data, err := b64.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("%w: base64 decoding of data segment failed", apperrors.ErrShareParse)
	}

	if len(parts) == 4 {
		if len(parts[3]) != 4 {
			return false, fmt.Errorf("%w: checksum segment must be exactly 4 characters, got %d", apperrors.ErrShareParse, len(parts[3]))
		}
		sumBytes, err := b64.DecodeString(parts[3])
		if err != nil {
			return false, fmt.Errorf("%w: base64 decoding of checksum segment failed", apperrors.ErrShareParse)
		}
		if len(sumBytes) != 3 {
			return false, fmt.Errorf("%w: checksum segment must decode to 3 bytes, got %d", apperrors.ErrShareParse, len(sumBytes))
		}
		want := checksum.CRC24(byte(k), byte(x), data)
		if sumBytes[0] != want[0] || sumBytes[1] != want[1] || sumBytes[2] != want[2] {
			return false, apperrors.ErrChecksumMismatch
		}
	}

	if a.haveKL {
		if k != a.k || len(data) != a.length {
			return false, apperrors.ErrIncompatibleShares
		}
	} else {
		a.k = k
		a.length = len(data)
		a.haveKL = true
	}

	if a.seen[byte(x)] {
		// Duplicate x-coordinate: silently tolerated, per the accumulator's
		// first-seen-wins rule. It does not count toward the threshold.
		return a.Done(), nil
	}
	a.seen[byte(x)] = true
	a.shares = append(a.shares, shamir.Share{X: byte(x), Data: data})

	return a.Done(), nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 255 {
		return 0, fmt.Errorf("value %d out of range 1..255", n)
	}
	return n, nil
}
