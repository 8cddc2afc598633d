// main.go
package main

import (
	"os"

	"github.com/petervdpas/folio/internal/cli"
)

// appVersion is set at build time via -ldflags "-X main.appVersion=x.y.z"
var appVersion = "dev"

func main() {
	if err := cli.NewRootCmd(appVersion).Execute(); err != nil {
		os.Exit(1)
	}
}
