// Command shardctl splits and reconstructs secrets with Shamir's Secret
// Sharing over GF(2^8).
package main

import (
	"os"

	"github.com/shardctl/shardctl/internal/cli"
	"github.com/shardctl/shardctl/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	cli.SetVersion(version)
	code := cli.Execute()
	_ = logging.Sync()
	os.Exit(code)
}
