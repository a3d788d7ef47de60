package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/internal/platform"
)

var (
	inspectWatch bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [pattern...]",
	Short: "Print the spin and size of field files",
	Long: `Print one line per field file with its spin and size. Patterns may use
doublestar globs such as "fields/**/*.json". With --watch the files are
inspected again whenever they change, until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace()
		paths, err := ws.Expand(args...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, path := range paths {
			if err := inspectFile(ws, out, path); err != nil {
				return err
			}
		}

		slog.Debug("inspected", "component", ws.ComponentType(), "state", ws.State())

		if !inspectWatch {
			return nil
		}
		return watchFiles(cmd.Context(), ws, out, paths)
	},
}

func inspectFile(ws *platform.Workspace, out io.Writer, path string) error {
	f, err := ws.Load(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\tspin=%d\tsize=%d\n", path, f.Spin, f.Size())
	return err
}

func watchFiles(ctx context.Context, ws *platform.Workspace, out io.Writer, paths []string) error {
	w := ws.NewWatcher(paths, func(ctx context.Context, path string) error {
		return inspectFile(ws, out, path)
	})
	if err := w.Start(ctx); err != nil {
		return err
	}
	slog.Info("watching", "files", len(paths))

	<-ctx.Done()
	return w.Stop(context.Background())
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&inspectWatch, "watch", "w", false, "Inspect again when files change")
}
