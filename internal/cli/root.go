// Package cli holds the folio command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petervdpas/folio/internal/app"
	"github.com/petervdpas/folio/internal/config"
)

type App struct {
	Dir     string
	Version string
}

func NewRootCmd(version string) *cobra.Command {
	a := &App{Version: version}

	cmd := &cobra.Command{
		Use:          "folio",
		Short:        "Terminal-themed portfolio with a toy Lua IDE",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Serve the site in the current directory
  folio serve

  # Serve another site and open the browser
  folio serve ./sites/me --open

  # Fake-run the active file of the stored project
  folio run ./sites/me

  # Download the project the way the IDE would
  folio export ./sites/me -o project.zip
`),
	}

	cmd.PersistentFlags().StringVar(&a.Dir, "dir", envOr("FOLIO_DIR", ""), "Site directory (default: first argument or the current directory)")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newStatusCmd(a))
	cmd.AddCommand(newResetCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// siteDir picks the site directory: the positional argument, then --dir,
// then the working directory.
func (a *App) siteDir(args []string) (string, error) {
	dir := a.Dir
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid site directory: %w", err)
	}
	if st, err := os.Stat(abs); err != nil || !st.IsDir() {
		return "", fmt.Errorf("site directory does not exist: %s", abs)
	}
	return abs, nil
}

// loadConfig reads folio.json from dir, creating it with defaults first
// when create is set.
func loadConfig(dir string, create bool) (config.Config, string, error) {
	path := app.ConfigPath(dir)
	if create {
		cfg, _, err := config.Ensure(path)
		return cfg, path, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), path, nil
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}
