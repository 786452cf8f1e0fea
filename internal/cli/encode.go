package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/shardctl/shardctl/internal/logging"
	"github.com/shardctl/shardctl/internal/orchestrator"
)

var (
	flagThreshold  int
	flagShares     int
	flagKN         string
	flagNoChecksum bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Split the secret read from stdin into shares written to stdout",
	Long: `encode reads a secret of at most 64 KiB from stdin and writes N
share lines to stdout, K of which are required to reconstruct the secret.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVarP(&flagThreshold, "threshold", "k", 0, "number of shares required to reconstruct the secret")
	encodeCmd.Flags().IntVarP(&flagShares, "shares", "n", 0, "total number of shares to generate")
	encodeCmd.Flags().StringVar(&flagKN, "kn", "", "K,N as a single comma-separated value, e.g. --kn 3,5")
	encodeCmd.Flags().BoolVar(&flagNoChecksum, "no-checksum", false, "omit the CRC-24 checksum segment from each share line")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	k, n, err := resolveKN()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrArg, err)
	}
	if k < 1 || k > n || n > 255 {
		return fmt.Errorf("%w: require 1 <= K <= N <= 255, got K=%d N=%d", apperrors.ErrArg, k, n)
	}

	withChecksum := !flagNoChecksum
	if !cmd.Flags().Changed("no-checksum") {
		withChecksum = Preferences().DefaultChecksum
	}

	log := logging.L()
	return orchestrator.Encode(os.Stdin, os.Stdout, orchestrator.EncodeOptions{
		K:            k,
		N:            n,
		WithChecksum: withChecksum,
	}, log)
}

// resolveKN merges the --kn alias with --threshold/--shares: when --kn is
// set it takes precedence and the discrete flags are ignored.
func resolveKN() (int, int, error) {
	if flagKN != "" {
		parts := strings.SplitN(flagKN, ",", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("K and N must be separated by a comma")
		}
		k, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid K: %v", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid N: %v", err)
		}
		return k, n, nil
	}
	if flagThreshold == 0 || flagShares == 0 {
		return 0, 0, fmt.Errorf("both --threshold and --shares (or --kn) are required")
	}
	return flagThreshold, flagShares, nil
}
