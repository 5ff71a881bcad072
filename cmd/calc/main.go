// Command calc is a small integer calculator built on the climux router.
package main

import (
	"os"

	"github.com/footprint-tools/climux/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cli.Main(version))
}
