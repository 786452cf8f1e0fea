// Package shamir implements Shamir's Secret Sharing over GF(2^8), operating
// on raw byte slices. It knows nothing about textual encoding or checksums;
// see internal/sharecodec and internal/checksum for those concerns.
package shamir

import (
	"fmt"

	"github.com/shardctl/shardctl/internal/gf256"
	"github.com/shardctl/shardctl/internal/randsource"
)

// Share is one participant's byte-for-byte share of a secret. X is the
// share's coordinate in 1..255; Data has the same length as the original
// secret.
type Share struct {
	X    byte
	Data []byte
}

// Split builds n shares of secret such that any k of them, and no fewer,
// are sufficient to reconstruct it. src supplies the random polynomial
// coefficients for every byte but the constant term.
func Split(secret []byte, k, n int, src randsource.Source) ([]Share, error) {
	if k < 1 {
		return nil, fmt.Errorf("shamir: threshold must be at least 1, got %d", k)
	}
	if n < k {
		return nil, fmt.Errorf("shamir: share count %d must be >= threshold %d", n, k)
	}
	if n > 255 {
		return nil, fmt.Errorf("shamir: share count %d exceeds 255", n)
	}

	shares := make([]Share, n)
	for i := range shares {
		shares[i] = Share{X: byte(i + 1), Data: make([]byte, len(secret))}
	}

	coeffs := make([]byte, k)
	for pos, secretByte := range secret {
		coeffs[0] = secretByte
		if k > 1 {
			if err := randsource.Fill(src, coeffs[1:]); err != nil {
				return nil, fmt.Errorf("shamir: generating coefficients: %w", err)
			}
		}
		for i := range shares {
			shares[i].Data[pos] = evaluate(coeffs, shares[i].X)
		}
	}
	return shares, nil
}

// evaluate computes the polynomial with the given coefficients (coeffs[0]
// is the constant term) at x as the sum of coeffs[i] * x^i, keeping a
// running power of x.
func evaluate(coeffs []byte, x byte) byte {
	gx := gf256.FromByte(x)
	fac := gf256.One
	acc := gf256.Zero
	for _, c := range coeffs {
		acc = acc.Add(fac.Mul(gf256.FromByte(c)))
		fac = fac.Mul(gx)
	}
	return acc.ToByte()
}

// Combine reconstructs a secret from shares via Lagrange interpolation at
// x=0. At least one share is required (sufficient when K=1), and all
// shares must have equal-length Data and distinct X coordinates.
func Combine(shares []Share) ([]byte, error) {
	if len(shares) < 1 {
		return nil, fmt.Errorf("shamir: need at least 1 share, got %d", len(shares))
	}
	length := len(shares[0].Data)
	seen := make(map[byte]bool, len(shares))
	for _, s := range shares {
		if len(s.Data) != length {
			return nil, fmt.Errorf("shamir: share length mismatch: want %d, got %d", length, len(s.Data))
		}
		if seen[s.X] {
			return nil, fmt.Errorf("shamir: duplicate share x-coordinate %d", s.X)
		}
		seen[s.X] = true
	}

	secret := make([]byte, length)
	points := make([]point, len(shares))
	for pos := 0; pos < length; pos++ {
		for i, s := range shares {
			points[i] = point{x: gf256.FromByte(s.X), y: gf256.FromByte(s.Data[pos])}
		}
		secret[pos] = lagrangeInterpolateAtZero(points)
	}
	return secret, nil
}

type point struct {
	x gf256.Element
	y gf256.Element
}

// lagrangeInterpolateAtZero evaluates the unique polynomial through pts at
// x=0, which recovers the polynomial's constant term: the shared secret
// byte.
func lagrangeInterpolateAtZero(pts []point) byte {
	sum := gf256.Zero
	for i, pi := range pts {
		term := gf256.One
		for j, pj := range pts {
			if i == j {
				continue
			}
			// (0 - xj) / (xi - xj)
			numerator := gf256.Zero.Sub(pj.x)
			denominator := pi.x.Sub(pj.x)
			term = term.Mul(numerator.Div(denominator))
		}
		sum = sum.Add(term.Mul(pi.y))
	}
	return sum.ToByte()
}
