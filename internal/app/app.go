// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ragcraft/ragcraft/internal/interaction"
	"github.com/ragcraft/ragcraft/internal/manifest"
	"github.com/ragcraft/ragcraft/internal/scaffold"
	"github.com/ragcraft/ragcraft/internal/version"
)

// ProjectMaterializer renders a template tree into a destination directory.
type ProjectMaterializer interface {
	Materialize(dir, dest string, data scaffold.TemplateData) error
}

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	WorkDir      string
	Out          io.Writer
	Prompter     interaction.Prompter
	Templates    manifest.Manifest
	Materializer ProjectMaterializer
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string     `name:"env-file" help:"Path to .env file with provider keys"`
	Create  CreateCmd  `cmd:"" help:"Scaffold a new chat application"`
	List    ListCmd    `cmd:"" help:"List supported frameworks and vector stores"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	ListCmd    struct{}
	VersionCmd struct{}
)

// CreateCmd holds the flags of the create command. Every field is optional;
// missing choices are prompted for on a TTY and defaulted otherwise.
type CreateCmd struct {
	Dir            string   `arg:"" optional:"" help:"Project directory (default: ./<name>)"`
	Name           string   `help:"Project name (default: directory base name)"`
	Framework      string   `short:"f" help:"Backend framework (fastapi, express)"`
	VectorStore    string   `name:"vector-store" help:"Vector store (none, mongo, pg, pinecone, milvus, qdrant, chroma)"`
	Model          string   `help:"LLM model name"`
	EmbeddingModel string   `name:"embedding-model" help:"Embedding model name"`
	Port           int      `short:"p" help:"Backend port"`
	OpenAIKey      string   `name:"openai-key" help:"OpenAI API key (default: OPENAI_API_KEY)"`
	AnthropicKey   string   `name:"anthropic-key" help:"Anthropic API key (default: ANTHROPIC_API_KEY)"`
	DataSource     []string `name:"data-source" help:"Local data source to index (repeatable)"`
	Yes            bool     `short:"y" help:"Accept defaults without prompting"`
}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the matching handler. Returns 0
// on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load provider keys from an env file if provided, or from ./.env.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	handlers := map[string]func(CLI, Dependencies, io.Writer) int{
		"create":       runCreate,
		"create <dir>": runCreate,
		"list":         runList,
		"version":      func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}
	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(cli, deps, out)
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
