// Package randsource abstracts the random byte source used to generate
// polynomial coefficients, so tests can substitute a deterministic source
// without touching the Shamir algorithm itself.
package randsource

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Source fills a buffer with random bytes, mirroring io.Reader but named
// for the one thing callers in this package ever do with it.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Default is the production random source, backed by the operating
// system's CSPRNG.
var Default Source = rand.Reader

// ErrSource wraps every failure this package reports, so callers can
// classify "the entropy source failed" with errors.Is without string
// matching.
var ErrSource = errors.New("random source failure")

// Fill reads exactly len(p) bytes from src into p, treating a short read as
// a failure of the source.
func Fill(src Source, p []byte) error {
	n, err := src.Read(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSource, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: short read: got %d of %d bytes", ErrSource, n, len(p))
	}
	return nil
}
