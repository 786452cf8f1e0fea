// Package orchestrator drives the encode and decode flows end to end: byte
// I/O, the secret-size cap, and wiring the Shamir core to the share codec.
package orchestrator

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/shardctl/shardctl/internal/randsource"
	"github.com/shardctl/shardctl/internal/shamir"
	"github.com/shardctl/shardctl/internal/sharecodec"
	"go.uber.org/zap"
)

// MaxSecretBytes is the largest secret this tool will encode. It matches
// the original secretshare tool's 64 KiB ceiling.
const MaxSecretBytes = 0x10000

// EncodeOptions configures a single Encode invocation.
type EncodeOptions struct {
	K            int
	N            int
	WithChecksum bool
	RandomSource randsource.Source
}

// Encode reads a secret (at most MaxSecretBytes) from r, splits it into N
// shares requiring K to reconstruct, and writes one share line per share to
// w in ascending x order.
func Encode(r io.Reader, w io.Writer, opts EncodeOptions, log *zap.Logger) error {
	correlationID := uuid.NewString()
	log = log.With(zap.String("op", "encode"), zap.String("correlation_id", correlationID), zap.Int("k", opts.K), zap.Int("n", opts.N))

	secret, err := readSecretCapped(r)
	if err != nil {
		log.Error("reading secret failed", zap.Error(err))
		return err
	}
	log.Info("secret read", zap.Int("secret_len", len(secret)))

	src := opts.RandomSource
	if src == nil {
		src = randsource.Default
	}

	shares, err := shamir.Split(secret, opts.K, opts.N, src)
	if err != nil {
		log.Error("split failed", zap.Error(err))
		if errors.Is(err, randsource.ErrSource) {
			return fmt.Errorf("%w: %v", apperrors.ErrRandomFailure, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrArg, err)
	}

	bw := bufio.NewWriter(w)
	for _, s := range shares {
		line := sharecodec.Encode(opts.K, s.X, s.Data, opts.WithChecksum)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	log.Info("shares written", zap.Int("share_count", len(shares)))
	return nil
}

// Decode reads share lines from r until K distinct shares have been
// collected, reconstructs the secret, and writes it to w.
func Decode(r io.Reader, w io.Writer, log *zap.Logger) error {
	correlationID := uuid.NewString()
	log = log.With(zap.String("op", "decode"), zap.String("correlation_id", correlationID))

	acc := sharecodec.NewAccumulator()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		done, err := acc.Add(scanner.Text())
		if err != nil {
			log.Error("share line rejected", zap.Error(err))
			return err
		}
		if done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	if !acc.Done() {
		log.Warn("not enough shares provided")
		return apperrors.ErrNotEnoughShares
	}

	secret, err := shamir.Combine(acc.Shares())
	if err != nil {
		log.Error("combine failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrIncompatibleShares, err)
	}

	if _, err := w.Write(secret); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	log.Info("secret reconstructed", zap.Int("secret_len", len(secret)), zap.Int("k", acc.K()))
	return nil
}

// readSecretCapped reads at most MaxSecretBytes from r, then probes for one
// additional byte to detect an oversized secret without buffering it.
func readSecretCapped(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, MaxSecretBytes)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	if len(data) == MaxSecretBytes {
		var probe [1]byte
		n, err := r.Read(probe[:])
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrIO, err)
		}
		if n > 0 {
			return nil, fmt.Errorf("%w: limit is %d bytes", apperrors.ErrSecretTooLarge, MaxSecretBytes)
		}
	}
	return data, nil
}
