// Where: cli/assets/scaffold_embed.go
// What: Embed scaffold template trees, the template manifest, and its schema.
// Why: Keep everything the CLI writes to disk owned by a single binary.
package assets

import "embed"

// Template trees deliberately store "gitignore" without the leading dot;
// go:embed skips dotfiles, and the scaffolder restores the dot on copy.
//
//go:embed templates
var TemplatesFS embed.FS

//go:embed templates.yml
var TemplateManifest []byte

//go:embed schema/templates.schema.json
var TemplateManifestSchema []byte
