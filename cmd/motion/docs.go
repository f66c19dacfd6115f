package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// docPackage is one public package rendered into the API reference.
type docPackage struct {
	Name     string
	Title    string
	Path     string
	Position int
}

var docPackages = []docPackage{
	{"animation", "Animation", "pkg/animation", 1},
	{"core", "Core", "pkg/core", 2},
	{"widgets", "Widgets", "pkg/widgets", 3},
	{"reactive", "Reactive", "pkg/reactive", 4},
	{"binding", "Binding", "pkg/binding", 5},
	{"dom", "Document", "pkg/dom", 6},
	{"graphics", "Graphics", "pkg/graphics", 7},
	{"errors", "Errors", "pkg/errors", 8},
	{"testing", "Testing", "pkg/testing", 9},
}

var docsOut string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate markdown API reference with gomarkdoc",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := findModuleRoot()
		if err != nil {
			return err
		}
		if _, err := exec.LookPath("gomarkdoc"); err != nil {
			return fmt.Errorf("gomarkdoc not found on PATH (go install github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest)")
		}
		out := docsOut
		if !filepath.IsAbs(out) {
			out = filepath.Join(root, out)
		}
		if err := os.MkdirAll(out, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}

		for _, pkg := range docPackages {
			if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
				slog.Warn("skipping missing package", "package", pkg.Name)
				continue
			}
			md, err := runGomarkdoc(root, pkg.Path)
			if err != nil {
				slog.Warn("gomarkdoc failed", "package", pkg.Name, "error", err)
				continue
			}
			target := filepath.Join(out, pkg.Name+".md")
			if err := os.WriteFile(target, []byte(renderDocPage(pkg, md)), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			slog.Info("wrote api page", "package", pkg.Name, "path", target)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API reference written to %s\n", out)
		return nil
	},
}

func init() {
	docsCmd.Flags().StringVarP(&docsOut, "out", "o", filepath.Join("docs", "api"), "output directory")
	rootCmd.AddCommand(docsCmd)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod above %s", dir)
		}
		dir = parent
	}
}

func runGomarkdoc(root, pkgPath string) (string, error) {
	c := exec.Command("gomarkdoc", "./"+pkgPath)
	c.Dir = root
	var stdout, stderr bytes.Buffer
	c.Stdout, c.Stderr = &stdout, &stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// renderDocPage prepends front matter and strips the parts of gomarkdoc
// output that duplicate the site navigation.
func renderDocPage(pkg docPackage, md string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---\nid: %s\ntitle: %s\nsidebar_position: %d\n---\n\n", pkg.Name, pkg.Title, pkg.Position)
	b.WriteString(cleanMarkdown(md))
	return b.String()
}

func cleanMarkdown(md string) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	inIndex, inImport := false, false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}
		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		if line == "```go" && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "import ") {
			inImport = true
		}
		if inImport {
			if line == "```" {
				inImport = false
			}
			continue
		}

		if summary, ok := strings.CutPrefix(line, "<details><summary>"); ok && strings.HasSuffix(summary, "</summary>") {
			out = append(out, "", "**"+strings.TrimSuffix(summary, "</summary>")+":**", "")
			continue
		}
		switch line {
		case "</details>", "<p>", "</p>":
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
