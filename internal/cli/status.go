package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petervdpas/folio/internal/app"
	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/storage"
)

type lister interface {
	List(ctx context.Context) ([]storage.Entry, error)
}

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status [dir]",
		Short: "Show the stored project and storage entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, a, args, func(svc *app.Services, cfg config.Config) error {
				out := cmd.OutOrStdout()
				v := svc.Session.View()

				fmt.Fprintf(out, "storage:  %s\n", cfg.Storage.Driver)
				if db, ok := svc.KV.(*storage.DB); ok {
					fmt.Fprintf(out, "database: %s\n", db.Path())
					if ver, err := db.Meta("schema_version"); err == nil {
						fmt.Fprintf(out, "schema:   v%s\n", ver)
					}
				}
				fmt.Fprintf(out, "project:  %s (%d file(s), active %q)\n", v.RootName, v.FileCount, v.ActiveName)

				l, ok := svc.KV.(lister)
				if !ok {
					return nil
				}
				entries, err := l.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(out, "  %-24s %8d bytes  %s\n", e.Key, e.Size, e.UpdatedAt.Format("2006-01-02 15:04:05"))
				}
				return nil
			})
		},
	}
}

func newResetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [dir]",
		Short: "Delete the stored project; the next start uses the default one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, a, args, func(svc *app.Services, _ config.Config) error {
				if err := svc.Workspace.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", svc.Workspace.Key())
				return nil
			})
		},
	}
}
