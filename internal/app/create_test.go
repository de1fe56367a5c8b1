// Where: cli/internal/app/create_test.go
// What: Tests for the create command.
// Why: Ensure a full scaffold run produces the documented tree and env files.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ragcraft/ragcraft/assets"
	"github.com/ragcraft/ragcraft/internal/config"
	"github.com/ragcraft/ragcraft/internal/constants"
	"github.com/ragcraft/ragcraft/internal/interaction"
	"github.com/ragcraft/ragcraft/internal/manifest"
	"github.com/ragcraft/ragcraft/internal/scaffold"
)

type scriptedPrompter struct {
	inputs  []string
	selects []string
}

func (p *scriptedPrompter) Input(string, string) (string, error) {
	if len(p.inputs) == 0 {
		return "", nil
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

func (p *scriptedPrompter) SelectValue(_ string, options []interaction.SelectOption) (string, error) {
	if len(p.selects) == 0 {
		if len(options) == 0 {
			return "", nil
		}
		return options[0].Value, nil
	}
	next := p.selects[0]
	p.selects = p.selects[1:]
	return next, nil
}

func testDependencies(t *testing.T, workDir string) Dependencies {
	t.Helper()
	m, err := manifest.Load(assets.TemplateManifest, assets.TemplateManifestSchema)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	return Dependencies{
		WorkDir:      workDir,
		Templates:    m,
		Materializer: scaffold.Materializer{Templates: assets.TemplatesFS},
	}
}

func TestRunCreateScaffoldsProject(t *testing.T) {
	workDir := t.TempDir()
	deps := testDependencies(t, workDir)
	var out bytes.Buffer

	cli := CLI{Create: CreateCmd{
		Dir:         "demo-chat",
		Framework:   constants.FrameworkFastAPI,
		VectorStore: constants.VectorStoreQdrant,
		OpenAIKey:   "sk-test",
		Yes:         true,
	}}

	if code := runCreate(cli, deps, &out); code != 0 {
		t.Fatalf("create failed (%d): %s", code, out.String())
	}

	projectDir := filepath.Join(workDir, "demo-chat")
	for _, path := range []string{
		filepath.Join(projectDir, "backend", "main.py"),
		filepath.Join(projectDir, "backend", ".gitignore"),
		filepath.Join(projectDir, "backend", ".env"),
		filepath.Join(projectDir, "frontend", "app", "page.tsx"),
		filepath.Join(projectDir, "frontend", ".env"),
		filepath.Join(projectDir, config.FileName),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}

	backendEnv, err := os.ReadFile(filepath.Join(projectDir, "backend", ".env"))
	if err != nil {
		t.Fatalf("read backend env: %v", err)
	}
	if !strings.Contains(string(backendEnv), "OPENAI_API_KEY=sk-test") {
		t.Fatalf("backend env missing key: %s", backendEnv)
	}
	if !strings.Contains(string(backendEnv), "QDRANT_URL=") {
		t.Fatalf("backend env missing vector store block: %s", backendEnv)
	}

	frontendEnv, err := os.ReadFile(filepath.Join(projectDir, "frontend", ".env"))
	if err != nil {
		t.Fatalf("read frontend env: %v", err)
	}
	if !strings.Contains(string(frontendEnv), "NEXT_PUBLIC_MODEL="+constants.DefaultModel) {
		t.Fatalf("frontend env missing public model: %s", frontendEnv)
	}
	if strings.Contains(string(frontendEnv), "QDRANT_URL") {
		t.Fatalf("frontend env must not carry store credentials: %s", frontendEnv)
	}

	record, err := config.LoadProjectConfig(config.ProjectConfigPath(projectDir))
	if err != nil {
		t.Fatalf("load project record: %v", err)
	}
	if record.Stack.Framework != constants.FrameworkFastAPI {
		t.Fatalf("unexpected record: %#v", record)
	}
	if record.App.Name != "demo-chat" {
		t.Fatalf("unexpected project name: %#v", record.App)
	}

	readme, err := os.ReadFile(filepath.Join(projectDir, "backend", "README.md"))
	if err != nil {
		t.Fatalf("read rendered readme: %v", err)
	}
	if !strings.Contains(string(readme), "# demo-chat backend") {
		t.Fatalf("template data not rendered: %s", readme)
	}
}

func TestRunCreateAbortsWhenOverwriteDeclined(t *testing.T) {
	workDir := t.TempDir()
	deps := testDependencies(t, workDir)
	deps.Prompter = &scriptedPrompter{}
	if err := os.MkdirAll(filepath.Join(workDir, "existing"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	restoreTerm := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return true }
	restorePrompt := promptOverwrite
	promptOverwrite = func(string) (bool, error) { return false, nil }
	t.Cleanup(func() {
		interaction.IsTerminal = restoreTerm
		promptOverwrite = restorePrompt
	})

	var out bytes.Buffer
	cli := CLI{Create: CreateCmd{
		Dir:         "existing",
		Framework:   constants.FrameworkFastAPI,
		VectorStore: constants.VectorStoreNone,
	}}
	if code := runCreate(cli, deps, &out); code == 0 {
		t.Fatalf("expected abort exit code")
	}
	if _, err := os.Stat(filepath.Join(workDir, "existing", "backend")); !os.IsNotExist(err) {
		t.Fatalf("declined overwrite must not scaffold, got %v", err)
	}
}

func TestRunCreateRejectsUnknownFramework(t *testing.T) {
	deps := testDependencies(t, t.TempDir())
	var out bytes.Buffer

	cli := CLI{Create: CreateCmd{Dir: "x", Framework: "django", Yes: true}}
	if code := runCreate(cli, deps, &out); code == 0 {
		t.Fatalf("expected failure for unknown framework")
	}
	if !strings.Contains(out.String(), "unsupported framework") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestResolveCreateRequestDefaults(t *testing.T) {
	deps := testDependencies(t, t.TempDir())

	req, err := resolveCreateRequest(CreateCmd{Yes: true}, deps)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if req.Name != defaultName {
		t.Fatalf("unexpected name: %q", req.Name)
	}
	if req.Options.Framework != constants.FrameworkFastAPI {
		t.Fatalf("unexpected framework: %q", req.Options.Framework)
	}
	if req.Options.VectorStore != constants.VectorStoreNone {
		t.Fatalf("unexpected store: %q", req.Options.VectorStore)
	}
	if req.Dir != filepath.Join(deps.WorkDir, defaultName) {
		t.Fatalf("unexpected dir: %q", req.Dir)
	}
}

func TestResolveCreateRequestPrompts(t *testing.T) {
	deps := testDependencies(t, t.TempDir())
	deps.Prompter = &scriptedPrompter{
		inputs:  []string{"my-bot"},
		selects: []string{constants.FrameworkExpress, constants.VectorStoreMongo},
	}

	restore := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return true }
	t.Cleanup(func() { interaction.IsTerminal = restore })

	req, err := resolveCreateRequest(CreateCmd{}, deps)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if req.Name != "my-bot" {
		t.Fatalf("unexpected name: %q", req.Name)
	}
	if req.Options.Framework != constants.FrameworkExpress {
		t.Fatalf("unexpected framework: %q", req.Options.Framework)
	}
	if req.Options.VectorStore != constants.VectorStoreMongo {
		t.Fatalf("unexpected store: %q", req.Options.VectorStore)
	}
}

func TestResolveCreateRequestReadsKeysFromEnv(t *testing.T) {
	deps := testDependencies(t, t.TempDir())
	t.Setenv(constants.EnvOpenAIAPIKey, "sk-from-env")
	t.Setenv(constants.EnvAnthropicAPIKey, "")

	req, err := resolveCreateRequest(CreateCmd{Yes: true}, deps)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if req.Options.OpenAIKey != "sk-from-env" {
		t.Fatalf("unexpected key: %q", req.Options.OpenAIKey)
	}

	req, err = resolveCreateRequest(CreateCmd{Yes: true, OpenAIKey: "sk-flag"}, deps)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if req.Options.OpenAIKey != "sk-flag" {
		t.Fatalf("flag must win over environment: %q", req.Options.OpenAIKey)
	}
}
