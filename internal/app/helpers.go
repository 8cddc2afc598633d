// internal/app/helpers.go
package app

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/util"
)

// NormalizeLocalViewer returns the listen addr and browser URL for a
// configured viewer address. A wildcard host is shown as 127.0.0.1 in the
// URL but still listens on every interface.
func NormalizeLocalViewer(cfgAddr string) (listenAddr string, url string) {
	a := strings.TrimSpace(cfgAddr)
	listenAddr = a

	if strings.HasPrefix(a, ":") {
		a = "127.0.0.1" + a
	}
	if strings.HasPrefix(a, "0.0.0.0:") {
		a = "127.0.0.1:" + strings.TrimPrefix(a, "0.0.0.0:")
	}
	url = "http://" + a
	return
}

func WaitTCP(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err == nil {
			_ = c.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for %s", addr)
}

// ConfigPath is the folio.json of a site directory.
func ConfigPath(siteDir string) string {
	return filepath.Join(siteDir, config.FileName)
}

// pagesDir resolves the markdown overlay directory; empty means embedded
// pages only.
func pagesDir(siteDir string, cfg config.Config) string {
	if cfg.Portfolio.PagesDir == "" {
		return ""
	}
	return util.ResolvePath(siteDir, cfg.Portfolio.PagesDir)
}

func logBanner(siteDir, cfgPath string, cfg config.Config) {
	log.Info("────────────────────────────────────────")
	log.Infof(" Site folder : %s", siteDir)
	log.Infof(" Config file : %s", cfgPath)
	log.Infof(" Storage     : %s", cfg.Storage.Driver)
	if dir := pagesDir(siteDir, cfg); dir != "" {
		log.Infof(" Pages       : %s", dir)
	}
	log.Info("────────────────────────────────────────")
}
