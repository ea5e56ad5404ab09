package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/aashiqfarid/portfolio/internal/content"
	"github.com/aashiqfarid/portfolio/internal/page"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the page and its assets as static files",
	Long:  "Renders index.html and copies the static assets into the output directory so the portfolio can be hosted without the server. The typewriter runs on browser timers.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := exportSite(content.Default, buildOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote site to %s\n", buildOut)
		return nil
	},
}

var buildOut string

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "dist", "Output directory")
	rootCmd.AddCommand(buildCmd)
}

func exportSite(p content.Portfolio, out string) error {
	if err := content.Validate(p); err != nil {
		return err
	}
	view, err := page.Build(p, page.Options{Static: true})
	if err != nil {
		return err
	}
	r, err := page.NewRenderer()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, view); err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	// replaced atomically
	if err := renameio.WriteFile(filepath.Join(out, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	return copyStatic(filepath.Join(out, "static"))
}

func copyStatic(dst string) error {
	static := page.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := renameio.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		return nil
	})
}
