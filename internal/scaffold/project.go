// Where: cli/internal/scaffold/project.go
// What: Materialize an embedded template tree into a project directory.
// Why: Turn the user's framework choice into files on disk in one place.
package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateData is the context available to .tmpl files inside template trees.
type TemplateData struct {
	ProjectName string
	Framework   string
	Model       string
	Port        int
}

// Materializer extracts template trees from an embedded filesystem.
type Materializer struct {
	// Templates is the filesystem holding template trees, rooted so that
	// manifest dir values (e.g. "templates/backend/fastapi") resolve in it.
	Templates fs.FS
}

// Materialize renders the template tree at dir into dest. Files ending in
// .tmpl are executed as sprig-enabled text templates and written without the
// suffix; everything else is copied verbatim. A file named "gitignore" lands
// as ".gitignore" (dotfiles cannot live in the embedded tree). Existing
// files under dest are overwritten.
func (m Materializer) Materialize(dir, dest string, data TemplateData) error {
	staged, err := os.MkdirTemp("", "ragcraft-template-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staged)

	if err := m.stage(dir, staged, data); err != nil {
		return err
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	return Copy([]string{"**/*"}, absDest, CopyOptions{
		Cwd:    staged,
		Rename: scaffoldRename,
	})
}

// stage renders the tree at dir into the staging directory.
func (m Materializer) stage(dir, staged string, data TemplateData) error {
	return fs.WalkDir(m.Templates, dir, func(entryPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, entryPath)
		if err != nil {
			return err
		}

		payload, err := fs.ReadFile(m.Templates, entryPath)
		if err != nil {
			return err
		}

		target := filepath.Join(staged, rel)
		if strings.HasSuffix(entryPath, ".tmpl") {
			rendered, err := renderTemplate(path.Base(entryPath), string(payload), data)
			if err != nil {
				return fmt.Errorf("render %s: %w", entryPath, err)
			}
			payload = rendered
			target = strings.TrimSuffix(target, ".tmpl")
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, payload, 0o644)
	})
}

func renderTemplate(name, content string, data TemplateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scaffoldRename maps embedded filenames to their on-disk names.
func scaffoldRename(name string) string {
	if name == "gitignore" {
		return ".gitignore"
	}
	return name
}
