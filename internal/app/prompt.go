// internal/app/prompt.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/petervdpas/folio/internal/config"
)

// PromptInteractive walks through the settings a new site usually changes.
// Empty answers keep the current value. An invalid result falls back to
// the defaults.
func PromptInteractive(r io.Reader, siteDir, cfgPath string, cfg config.Config) config.Config {
	in := bufio.NewReader(r)

	fmt.Println("────────────────────────────────────────")
	fmt.Println("Folio interactive setup")
	fmt.Printf(" Site folder : %s\n", siteDir)
	fmt.Printf(" Config file : %s\n", cfgPath)
	fmt.Println("────────────────────────────────────────")
	fmt.Println()

	cfg.Profile.Name = askString(in, "Name", cfg.Profile.Name)
	cfg.Profile.Handle = askString(in, "Login handle", cfg.Profile.Handle)
	cfg.Profile.Tagline = askString(in, "Tagline", cfg.Profile.Tagline)
	cfg.Viewer.HTTPAddr = askString(in, "Viewer HTTP addr", cfg.Viewer.HTTPAddr)
	cfg.Viewer.IDELocalOnly = askBool(in, "Read-only IDE for remote visitors", cfg.Viewer.IDELocalOnly)

	cfg.Storage.Driver = askString(in, "Storage driver (sqlite|memory)", cfg.Storage.Driver)
	if cfg.Storage.Driver != "memory" {
		cfg.Storage.DBPath = askString(in, "Database path", cfg.Storage.DBPath)
	}

	cfg.Editor.AutosaveMS = askInt(in, "Autosave delay (ms)", cfg.Editor.AutosaveMS)
	cfg.Editor.ArchiveEnabled = askBool(in, "Export multi-file projects as zip", cfg.Editor.ArchiveEnabled)
	cfg.Portfolio.PagesDir = askString(in, "Markdown pages dir (empty=built-in)", cfg.Portfolio.PagesDir)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\nKeeping defaults.\n", err)
		return config.Default()
	}
	return cfg
}

func askString(in *bufio.Reader, label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	s, _ := in.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func askInt(in *bufio.Reader, label string, def int) int {
	for {
		fmt.Printf("%s [%d]: ", label, def)
		s, err := in.ReadString('\n')
		s = strings.TrimSpace(s)
		if s == "" {
			return def
		}
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		if err != nil {
			return def
		}
		fmt.Println("Please enter a number.")
	}
}

func askBool(in *bufio.Reader, label string, def bool) bool {
	defStr := "n"
	if def {
		defStr = "y"
	}
	for {
		fmt.Printf("%s [y/n] (default=%s): ", label, defStr)
		s, err := in.ReadString('\n')
		s = strings.TrimSpace(strings.ToLower(s))
		if s == "" {
			return def
		}
		switch s {
		case "y", "yes", "true", "1":
			return true
		case "n", "no", "false", "0":
			return false
		}
		if err != nil {
			return def
		}
		fmt.Println("Please enter y or n.")
	}
}
