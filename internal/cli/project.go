package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petervdpas/folio/internal/app"
	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/project"
	"github.com/petervdpas/folio/internal/runner"
	"github.com/petervdpas/folio/internal/workspace"
)

func newRunCmd(a *App) *cobra.Command {
	var (
		file  string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Fake-run a file of the stored project",
		Long: strings.TrimSpace(`
Echoes the string-literal print, warn and error calls of a file, the same
way the IDE's Run button does. Nothing is executed. With --check the file
is only parsed and the first syntax error is reported.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, a, args, func(svc *app.Services, _ config.Config) error {
				p := svc.Session.Project()
				f := p.ActiveFile()
				if file != "" {
					f = findFile(p, file)
				}
				if f == nil {
					if file != "" {
						return fmt.Errorf("no file %q in the project", file)
					}
					return errors.New("the project has no active file")
				}

				if check {
					rep := runner.Check(f.Name, f.Content)
					printLines(cmd.OutOrStdout(), rep.Lines())
					if !rep.OK {
						return errors.New("syntax check failed")
					}
					return nil
				}
				printLines(cmd.OutOrStdout(), runner.Run(f.Content))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File id, name or path such as lib/util.lua (default: the active file)")
	cmd.Flags().BoolVar(&check, "check", false, "Only check the syntax")
	return cmd
}

// findFile matches ref against file ids, then slash-separated paths below
// the root, then bare names in display order.
func findFile(p *project.Project, ref string) *project.Node {
	if n := project.FindByID(p.Root, ref); n.IsFile() {
		return n
	}
	var byPath, byName *project.Node
	project.WalkFiles(p.Root, func(dirs []string, f *project.Node) {
		path := strings.Join(append(append([]string(nil), dirs...), f.Name), "/")
		if byPath == nil && path == ref {
			byPath = f
		}
		if byName == nil && f.Name == ref {
			byName = f
		}
	})
	if byPath != nil {
		return byPath
	}
	return byName
}

func printLines(w io.Writer, lines []runner.Line) {
	for _, l := range lines {
		fmt.Fprintf(w, "[%s] %s\n", l.Level, l.Text)
	}
}

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the stored project the way the IDE downloads it",
		Long: strings.TrimSpace(`
One file is written as itself, several files as a zip. When archiving is
disabled in folio.json the files are written flattened into the -o
directory.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, a, args, func(svc *app.Services, _ config.Config) error {
				arts, err := svc.Session.Export()
				if err != nil {
					return err
				}
				paths, err := writeArtifacts(arts, out)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file, or directory for several files (default: current directory)")
	return cmd
}

// writeArtifacts writes a single artifact to out (a file, or a directory
// when out names one) and several artifacts into the directory out. An
// artifact name that is not a plain local file name is refused.
func writeArtifacts(arts []workspace.Artifact, out string) ([]string, error) {
	for _, art := range arts {
		if !filepath.IsLocal(art.Name) || filepath.Base(art.Name) != art.Name {
			return nil, fmt.Errorf("refusing to write %q: not a plain file name", art.Name)
		}
	}
	if len(arts) == 1 {
		target := out
		if target == "" {
			target = arts[0].Name
		} else if st, err := os.Stat(target); err == nil && st.IsDir() {
			target = filepath.Join(target, arts[0].Name)
		}
		if err := writeFile(target, arts[0].Data); err != nil {
			return nil, err
		}
		return []string{target}, nil
	}

	dir := out
	if dir == "" {
		dir = "."
	}
	paths := make([]string, 0, len(arts))
	for _, art := range arts {
		target := filepath.Join(dir, art.Name)
		if err := writeFile(target, art.Data); err != nil {
			return paths, err
		}
		paths = append(paths, target)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func newImportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [dir] <file>",
		Short: "Import a project backup (.json) or add a source file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[len(args)-1]
			data, err := os.ReadFile(src)
			if err != nil {
				return err
			}
			return withServices(cmd, a, args[:len(args)-1], func(svc *app.Services, cfg config.Config) error {
				if limit := cfg.Editor.MaxImportKB << 10; len(data) > limit {
					return fmt.Errorf("Import failed: file larger than %d KB", cfg.Editor.MaxImportKB)
				}
				res, err := svc.Session.Import(filepath.Base(src), data)
				if err != nil {
					return fmt.Errorf("Import failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
				return nil
			})
		},
	}
	return cmd
}
