// Where: cli/cmd/ragcraft/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/ragcraft/ragcraft/assets"
	"github.com/ragcraft/ragcraft/internal/app"
	"github.com/ragcraft/ragcraft/internal/interaction"
	"github.com/ragcraft/ragcraft/internal/manifest"
	"github.com/ragcraft/ragcraft/internal/scaffold"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI:
// the working directory, the validated template manifest, and the embedded
// template materializer.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	templates, err := manifest.Load(assets.TemplateManifest, assets.TemplateManifestSchema)
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:      workDir,
		Out:          os.Stdout,
		Prompter:     interaction.HuhPrompter{},
		Templates:    templates,
		Materializer: scaffold.Materializer{Templates: assets.TemplatesFS},
	}, nil
}
