package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/util"
)

// FileName is the config file looked up in the site directory.
const FileName = "folio.json"

type Config struct {
	Profile   Profile   `json:"profile"`
	Viewer    Viewer    `json:"viewer"`
	Storage   Storage   `json:"storage"`
	Editor    Editor    `json:"editor"`
	Portfolio Portfolio `json:"portfolio"`
	Log       Log       `json:"log"`
}

type Profile struct {
	Name    string   `json:"name"`
	Handle  string   `json:"handle"` // shown in the boot prompt, "<handle>@login:~$"
	Tagline string   `json:"tagline"`
	Socials []Social `json:"socials"`
}

type Social struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

type Viewer struct {
	HTTPAddr     string `json:"http_addr"`
	Debug        bool   `json:"debug"`
	Theme        string `json:"theme"`
	Minify       bool   `json:"minify"`
	IDELocalOnly bool   `json:"ide_local_only"` // refuse IDE mutations from non-loopback clients
}

type Storage struct {
	Driver     string `json:"driver"` // "sqlite" or "memory"
	DBPath     string `json:"db_path"`
	ProjectKey string `json:"project_key"`
}

type Editor struct {
	AutosaveMS     int    `json:"autosave_ms"`
	DefaultExt     string `json:"default_ext"`
	ArchiveEnabled bool   `json:"archive_enabled"`
	MaxImportKB    int    `json:"max_import_kb"`
}

type Portfolio struct {
	PagesDir string `json:"pages_dir"` // empty: embedded pages only
	Watch    bool   `json:"watch"`
}

type Log struct {
	Level      string            `json:"level"`
	Subsystems map[string]string `json:"subsystems,omitempty"`
}

func Default() Config {
	return Config{
		Profile: Profile{
			Name:    "Aazyris",
			Handle:  "aazyris",
			Tagline: "Developer. Builder of small strange tools.",
			Socials: []Social{
				{Label: "GitHub", URL: "https://github.com/", Icon: "github"},
			},
		},
		Viewer: Viewer{
			HTTPAddr: "127.0.0.1:8080",
			Debug:    false,
			Theme:    "dark",
			Minify:   true,
		},
		Storage: Storage{
			Driver:     "sqlite",
			DBPath:     "data/folio.db",
			ProjectKey: "lua_project_v1",
		},
		Editor: Editor{
			AutosaveMS:     250,
			DefaultExt:     ".lua",
			ArchiveEnabled: true,
			MaxImportKB:    1024,
		},
		Portfolio: Portfolio{
			PagesDir: "",
			Watch:    true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	// Viewer
	if strings.TrimSpace(c.Viewer.HTTPAddr) == "" {
		return errors.New("viewer.http_addr is required")
	}
	if _, _, err := net.SplitHostPort(c.Viewer.HTTPAddr); err != nil {
		return fmt.Errorf("viewer.http_addr: %w", err)
	}
	switch c.Viewer.Theme {
	case "dark", "light":
	default:
		return errors.New("viewer.theme must be dark or light")
	}

	// Storage
	switch c.Storage.Driver {
	case "sqlite":
		if strings.TrimSpace(c.Storage.DBPath) == "" {
			return errors.New("storage.db_path is required for the sqlite driver")
		}
	case "memory":
	default:
		return fmt.Errorf("storage.driver %q must be sqlite or memory", c.Storage.Driver)
	}
	if strings.TrimSpace(c.Storage.ProjectKey) == "" {
		return errors.New("storage.project_key is required")
	}

	// Editor
	if c.Editor.AutosaveMS < 10 || c.Editor.AutosaveMS > 60000 {
		return errors.New("editor.autosave_ms must be 10..60000")
	}
	if !strings.HasPrefix(c.Editor.DefaultExt, ".") || len(c.Editor.DefaultExt) < 2 {
		return errors.New("editor.default_ext must look like .lua")
	}
	if c.Editor.MaxImportKB <= 0 {
		return errors.New("editor.max_import_kb must be > 0")
	}

	// Log
	if _, err := logging.LevelFromString(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	for sub, lvl := range c.Log.Subsystems {
		if _, err := logging.LevelFromString(lvl); err != nil {
			return fmt.Errorf("log.subsystems.%s: %w", sub, err)
		}
	}

	// Profile
	for i, s := range c.Profile.Socials {
		if strings.TrimSpace(s.Label) == "" || strings.TrimSpace(s.URL) == "" {
			return fmt.Errorf("profile.socials[%d] needs label and url", i)
		}
	}

	return nil
}

func Load(path string) (Config, error) {
	cfg, err := LoadPartial(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadPartial reads a config file without validation, so a CLI can still
// report which field is wrong.
func LoadPartial(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	// Start from defaults so missing JSON fields remain initialized.
	cfg := Default()
	if err := json.Unmarshal(util.StripBOM(b), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return util.WriteJSONFile(path, cfg)
}

// Ensure loads config if it exists; otherwise creates a default config file.
// Returns (cfg, createdNew, err).
func Ensure(path string) (Config, bool, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := Load(path)
		return cfg, false, err
	} else if !os.IsNotExist(err) {
		return Config{}, false, err
	}

	cfg := Default()
	if err := Save(path, cfg); err != nil {
		return Config{}, false, fmt.Errorf("create default config: %w", err)
	}
	return cfg, true, nil
}
