// Where: cli/internal/scaffold/project_test.go
// What: Tests for template-tree materialization.
// Why: Ensure rendering, gitignore mapping, and tree layout behave as shipped.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestMaterializeRendersTemplatesAndCopiesRaw(t *testing.T) {
	templates := fstest.MapFS{
		"templates/backend/fastapi/main.py":           {Data: []byte("app = FastAPI()\n")},
		"templates/backend/fastapi/README.md.tmpl":    {Data: []byte("# {{ .ProjectName }}\nPort {{ .Port }}\n")},
		"templates/backend/fastapi/gitignore":         {Data: []byte("__pycache__/\n")},
		"templates/backend/fastapi/app/api/routes.py": {Data: []byte("routes = []\n")},
	}

	dest := filepath.Join(t.TempDir(), "proj", "backend")
	m := Materializer{Templates: templates}
	err := m.Materialize("templates/backend/fastapi", dest, TemplateData{
		ProjectName: "demo-chat",
		Port:        8000,
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}

	readme, err := os.ReadFile(filepath.Join(dest, "README.md"))
	if err != nil {
		t.Fatalf("read rendered readme: %v", err)
	}
	if !strings.Contains(string(readme), "# demo-chat") || !strings.Contains(string(readme), "Port 8000") {
		t.Fatalf("template not rendered: %q", readme)
	}
	if _, err := os.Stat(filepath.Join(dest, "README.md.tmpl")); !os.IsNotExist(err) {
		t.Fatalf("tmpl suffix must be stripped, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, ".gitignore")); err != nil {
		t.Fatalf("expected gitignore mapped to .gitignore: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "gitignore")); !os.IsNotExist(err) {
		t.Fatalf("raw gitignore must not remain, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "app", "api", "routes.py")); err != nil {
		t.Fatalf("expected nested file preserved: %v", err)
	}
}

func TestMaterializeFailsOnBadTemplate(t *testing.T) {
	templates := fstest.MapFS{
		"templates/backend/fastapi/broken.py.tmpl": {Data: []byte("{{ .Missing | ")},
	}
	m := Materializer{Templates: templates}
	err := m.Materialize("templates/backend/fastapi", t.TempDir(), TemplateData{})
	if err == nil {
		t.Fatalf("expected parse error for malformed template")
	}
	if !strings.Contains(err.Error(), "broken.py.tmpl") {
		t.Fatalf("error should name the offending file: %v", err)
	}
}

func TestMaterializeSprigFunctions(t *testing.T) {
	templates := fstest.MapFS{
		"templates/frontend/nextjs/package.json.tmpl": {Data: []byte(`{"name": "{{ .ProjectName | lower }}"}`)},
	}
	dest := t.TempDir()
	m := Materializer{Templates: templates}
	if err := m.Materialize("templates/frontend/nextjs", dest, TemplateData{ProjectName: "MyChat"}); err != nil {
		t.Fatalf("materialize: %v", err)
	}
	payload, err := os.ReadFile(filepath.Join(dest, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	if !strings.Contains(string(payload), `"mychat"`) {
		t.Fatalf("sprig lower not applied: %q", payload)
	}
}
