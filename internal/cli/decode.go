package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shardctl/shardctl/internal/logging"
	"github.com/shardctl/shardctl/internal/orchestrator"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Reconstruct a secret from share lines read on stdin",
	Long: `decode reads share lines from stdin until a threshold number of
distinct shares has been accumulated, then writes the reconstructed secret
to stdout.`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	log := logging.L()
	return orchestrator.Decode(os.Stdin, os.Stdout, log)
}
