package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petervdpas/folio/internal/app"
	"github.com/petervdpas/folio/internal/config"
)

func newServeCmd(a *App) *cobra.Command {
	var (
		addr string
		open bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve the portfolio and the IDE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.siteDir(args)
			if err != nil {
				return err
			}
			cfg, cfgPath, err := loadConfig(dir, true)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Viewer.HTTPAddr = addr
			}

			printBanner(cmd, dir, cfgPath, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, app.Options{
				SiteDir:     dir,
				CfgPath:     cfgPath,
				Cfg:         cfg,
				OpenBrowser: open,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides viewer.http_addr)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the site in the default browser")
	return cmd
}

func printBanner(cmd *cobra.Command, dir, cfgPath string, cfg config.Config) {
	out := cmd.OutOrStdout()
	_, url := app.NormalizeLocalViewer(cfg.Viewer.HTTPAddr)

	fmt.Fprintln(out, "╔════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║                         Folio                          ║")
	fmt.Fprintln(out, "╚════════════════════════════════════════════════════════╝")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Site Directory: %s\n", dir)
	fmt.Fprintf(out, "Config File:    %s\n", cfgPath)
	if cfg.Profile.Name != "" {
		fmt.Fprintf(out, "Owner:          %s\n", cfg.Profile.Name)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "🌐 Portfolio:  %s\n", url)
	fmt.Fprintf(out, "🛠  IDE:        %s/ide\n", url)
	if cfg.Viewer.IDELocalOnly {
		fmt.Fprintln(out, "   (read-only for remote visitors)")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Starting... (Press Ctrl+C to stop)")
	fmt.Fprintln(out, "────────────────────────────────────────────────────────")
	fmt.Fprintln(out)
}

func newInitCmd(a *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create folio.json in a site directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.siteDir(args)
			if err != nil {
				return err
			}
			cfg, path, err := loadConfig(dir, true)
			if err != nil {
				return err
			}
			if interactive {
				cfg = app.PromptInteractive(cmd.InOrStdin(), dir, path, cfg)
				if err := config.Save(path, cfg); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for the common settings")
	return cmd
}

func newVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio v%s\n", a.Version)
		},
	}
}

// withServices opens the stored project of a site for a one-shot command.
func withServices(cmd *cobra.Command, a *App, args []string, fn func(*app.Services, config.Config) error) error {
	dir, err := a.siteDir(args)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(dir, false)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := app.OpenServices(ctx, dir, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(svc, cfg)
}
