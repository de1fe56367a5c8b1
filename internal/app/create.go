// Where: cli/internal/app/create.go
// What: Create command orchestration.
// Why: Turn user choices into a scaffolded project tree plus .env files.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ragcraft/ragcraft/internal/config"
	"github.com/ragcraft/ragcraft/internal/constants"
	"github.com/ragcraft/ragcraft/internal/envfile"
	"github.com/ragcraft/ragcraft/internal/interaction"
	"github.com/ragcraft/ragcraft/internal/scaffold"
	"github.com/ragcraft/ragcraft/internal/ui"
)

const (
	backendDir  = "backend"
	frontendDir = "frontend"
	defaultName = "chat-app"
)

// createRequest is the fully resolved input of one scaffold run.
type createRequest struct {
	Name    string
	Dir     string
	Options envfile.Options
}

func runCreate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	req, err := resolveCreateRequest(cli.Create, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, statErr := os.Stat(req.Dir); statErr == nil && interactive(cli.Create, deps) {
		ok, err := promptOverwrite(req.Dir)
		if err != nil {
			return exitWithError(out, err)
		}
		if !ok {
			console.Info("Aborted.")
			return 1
		}
	}

	console.Header("🪄", fmt.Sprintf("Scaffolding %s", req.Name))
	console.Item("Directory", req.Dir)
	console.Item("Framework", req.Options.Framework)
	console.Item("Vector store", req.Options.VectorStore)
	console.Item("Model", req.Options.Model())

	if err := scaffoldProject(deps, req); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Project created")
	console.Info(fmt.Sprintf("cd %s/%s to start the backend", req.Dir, backendDir))
	console.Info(fmt.Sprintf("cd %s/%s to start the frontend", req.Dir, frontendDir))
	if req.Options.OpenAIKey == "" && req.Options.AnthropicKey == "" {
		console.Warn("No provider API key configured; fill in the .env files before running")
	}
	return 0
}

// promptOverwrite is swapped out in tests.
var promptOverwrite = func(dir string) (bool, error) {
	return interaction.PromptYesNo(fmt.Sprintf("%s already exists, continue and overwrite files?", dir))
}

// interactive reports whether missing choices may be prompted for.
func interactive(cmd CreateCmd, deps Dependencies) bool {
	return !cmd.Yes && deps.Prompter != nil && interaction.IsTerminal(os.Stdin)
}

// resolveCreateRequest fills every unset create flag from a prompt (on a
// TTY) or a documented default, and resolves provider keys from the
// environment when not passed explicitly.
func resolveCreateRequest(cmd CreateCmd, deps Dependencies) (createRequest, error) {
	prompt := interactive(cmd, deps)

	name := strings.TrimSpace(cmd.Name)
	if name == "" && cmd.Dir != "" {
		name = filepath.Base(cmd.Dir)
	}
	if name == "" && prompt {
		entered, err := deps.Prompter.Input("What is your project named?", defaultName)
		if err != nil {
			return createRequest{}, err
		}
		name = strings.TrimSpace(entered)
	}
	if name == "" {
		name = defaultName
	}

	dir := cmd.Dir
	if dir == "" {
		dir = name
	}
	if !filepath.IsAbs(dir) && deps.WorkDir != "" {
		dir = filepath.Join(deps.WorkDir, dir)
	}

	framework, err := resolveFramework(cmd, deps, prompt)
	if err != nil {
		return createRequest{}, err
	}

	store, err := resolveVectorStore(cmd, deps, prompt)
	if err != nil {
		return createRequest{}, err
	}

	openAIKey := cmd.OpenAIKey
	if openAIKey == "" {
		openAIKey = os.Getenv(constants.EnvOpenAIAPIKey)
	}
	anthropicKey := cmd.AnthropicKey
	if anthropicKey == "" {
		anthropicKey = os.Getenv(constants.EnvAnthropicAPIKey)
	}

	return createRequest{
		Name: name,
		Dir:  dir,
		Options: envfile.Options{
			ModelName:      cmd.Model,
			EmbeddingModel: cmd.EmbeddingModel,
			OpenAIKey:      openAIKey,
			AnthropicKey:   anthropicKey,
			VectorStore:    store,
			Framework:      framework,
			Port:           cmd.Port,
			DataSources:    cmd.DataSource,
		},
	}, nil
}

func resolveFramework(cmd CreateCmd, deps Dependencies, prompt bool) (string, error) {
	framework := strings.TrimSpace(cmd.Framework)
	if framework == "" && prompt {
		var options []interaction.SelectOption
		for _, id := range deps.Templates.BackendIDs() {
			tpl, _ := deps.Templates.Backend(id)
			options = append(options, interaction.SelectOption{Label: tpl.Label, Value: tpl.ID})
		}
		selected, err := deps.Prompter.SelectValue("Which backend framework?", options)
		if err != nil {
			return "", err
		}
		framework = selected
	}
	if framework == "" {
		framework = constants.FrameworkFastAPI
	}
	if _, ok := deps.Templates.Backend(framework); !ok {
		return "", fmt.Errorf("unsupported framework %q (supported: %s)",
			framework, strings.Join(deps.Templates.BackendIDs(), ", "))
	}
	return framework, nil
}

func resolveVectorStore(cmd CreateCmd, deps Dependencies, prompt bool) (string, error) {
	store := strings.TrimSpace(cmd.VectorStore)
	if store == "" && prompt {
		var options []interaction.SelectOption
		for _, id := range constants.VectorStores() {
			options = append(options, interaction.SelectOption{Label: id, Value: id})
		}
		selected, err := deps.Prompter.SelectValue("Which vector store?", options)
		if err != nil {
			return "", err
		}
		store = selected
	}
	if store == "" {
		store = constants.VectorStoreNone
	}
	return store, nil
}

// scaffoldProject materializes both template trees, writes the .env files,
// and records the choices in ragcraft.yml.
func scaffoldProject(deps Dependencies, req createRequest) error {
	backendTpl, ok := deps.Templates.Backend(req.Options.Framework)
	if !ok {
		return fmt.Errorf("unsupported framework %q", req.Options.Framework)
	}
	frontendTpl, ok := deps.Templates.Frontend()
	if !ok {
		return fmt.Errorf("template manifest has no frontend template")
	}

	data := scaffold.TemplateData{
		ProjectName: req.Name,
		Framework:   req.Options.Framework,
		Model:       req.Options.Model(),
		Port:        req.Options.EffectivePort(),
	}

	if err := deps.Materializer.Materialize(backendTpl.Dir, filepath.Join(req.Dir, backendDir), data); err != nil {
		return fmt.Errorf("scaffold backend: %w", err)
	}
	if err := deps.Materializer.Materialize(frontendTpl.Dir, filepath.Join(req.Dir, frontendDir), data); err != nil {
		return fmt.Errorf("scaffold frontend: %w", err)
	}

	backendEnv := envfile.Assemble(envfile.TargetBackend, req.Options)
	if err := envfile.Write(filepath.Join(req.Dir, backendDir), backendEnv); err != nil {
		return fmt.Errorf("write backend env: %w", err)
	}
	frontendEnv := envfile.Assemble(envfile.TargetFrontend, req.Options)
	if err := envfile.Write(filepath.Join(req.Dir, frontendDir), frontendEnv); err != nil {
		return fmt.Errorf("write frontend env: %w", err)
	}

	record := config.ProjectConfig{
		App: config.AppConfig{
			Name:     req.Name,
			Backend:  backendDir,
			Frontend: frontendDir,
		},
		Stack: config.Stack{
			Framework:   req.Options.Framework,
			VectorStore: req.Options.VectorStore,
			Model:       req.Options.Model(),
			Port:        req.Options.EffectivePort(),
		},
		DataSources: req.Options.DataSources,
	}
	return config.SaveProjectConfig(config.ProjectConfigPath(req.Dir), record)
}
