// Where: cli/internal/envfile/assemble.go
// What: Build the descriptor sequence for a backend or frontend .env file.
// Why: Keep the provider/store/framework variable policy out of the renderer.
package envfile

import (
	"fmt"

	"github.com/ragcraft/ragcraft/internal/constants"
)

// Target selects which deployment's .env file is being assembled.
type Target string

const (
	TargetBackend  Target = "backend"
	TargetFrontend Target = "frontend"
)

// Options carries the user configuration consumed during assembly. All
// fields are optional; empty strings fall back to documented defaults or
// render as commented placeholders. DataSources is inspected only for
// presence, never for content.
type Options struct {
	ModelName      string
	EmbeddingModel string
	OpenAIKey      string
	AnthropicKey   string
	VectorStore    string
	Framework      string
	Port           int
	DataSources    []string
}

// Model returns the configured model name or the documented default.
func (o Options) Model() string {
	if o.ModelName == "" {
		return constants.DefaultModel
	}
	return o.ModelName
}

// EffectivePort returns the configured port or the documented default.
func (o Options) EffectivePort() int {
	if o.Port == 0 {
		return constants.DefaultPort
	}
	return o.Port
}

// Assemble produces the ordered descriptor sequence for the target. The
// result is the base block, then the vector-store extension, then the
// framework-conditional descriptors, in that fixed order.
func Assemble(target Target, opts Options) []Descriptor {
	model := opts.Model()

	entries := []Descriptor{
		{
			Name:        "MODEL",
			Description: "The name of the LLM model to use.",
			Value:       model,
		},
		{
			Name:        constants.EnvOpenAIAPIKey,
			Description: "The OpenAI API key to use.",
			Value:       opts.OpenAIKey,
		},
		{
			Name:        constants.EnvAnthropicAPIKey,
			Description: "The Anthropic API key to use.",
			Value:       opts.AnthropicKey,
		},
	}

	switch target {
	case TargetBackend:
		embedding := opts.EmbeddingModel
		if embedding == "" {
			embedding = constants.DefaultEmbeddingModel
		}
		entries = append(entries, Descriptor{
			Name:        "EMBEDDING_MODEL",
			Description: "The name of the embedding model to use.",
			Value:       embedding,
		})
		entries = append(entries, vectorStoreBlock(opts.VectorStore)...)
		entries = append(entries, backendFrameworkBlock(opts)...)
	case TargetFrontend:
		entries = append(entries, frontendBlock(model, opts)...)
	}

	return entries
}

// vectorStoreBlock maps a vector store identifier to its fixed descriptor
// list. Unrecognized identifiers contribute nothing.
func vectorStoreBlock(store string) []Descriptor {
	switch store {
	case constants.VectorStoreMongo:
		return []Descriptor{
			{
				Name:        "MONGO_URI",
				Description: "The MongoDB connection URI.\nFormat: mongodb+srv://<user>:<password>@<cluster>",
			},
			{Name: "MONGODB_DATABASE", Value: "ragcraft"},
			{Name: "MONGODB_VECTORS", Value: "vectors"},
			{Name: "MONGODB_VECTOR_INDEX", Value: "vector_index"},
		}
	case constants.VectorStorePG:
		return []Descriptor{
			{
				Name:        "PG_CONNECTION_STRING",
				Description: "The PostgreSQL connection string.\nFormat: postgresql://<user>:<password>@<host>:<port>/<database>",
			},
		}
	case constants.VectorStorePinecone:
		return []Descriptor{
			{
				Name:        "PINECONE_API_KEY",
				Description: "API key from the Pinecone console.",
			},
			{Name: "PINECONE_ENVIRONMENT"},
			{Name: "PINECONE_INDEX_NAME"},
		}
	case constants.VectorStoreMilvus:
		return []Descriptor{
			{
				Name:        "MILVUS_ADDRESS",
				Description: "The address of the Milvus server.",
				Value:       "http://localhost:19530",
			},
			{Name: "MILVUS_COLLECTION", Value: "ragcraft"},
			{Name: "MILVUS_USERNAME"},
			{Name: "MILVUS_PASSWORD"},
		}
	case constants.VectorStoreQdrant:
		return []Descriptor{
			{
				Name:        "QDRANT_URL",
				Description: "The URL of the Qdrant server.",
				Value:       "http://localhost:6333",
			},
			{Name: "QDRANT_COLLECTION", Value: "ragcraft"},
			{Name: "QDRANT_API_KEY"},
		}
	case constants.VectorStoreChroma:
		return []Descriptor{
			{
				Name:        "CHROMA_HOST",
				Description: "The hostname of the Chroma server.",
				Value:       "localhost",
			},
			{Name: "CHROMA_PORT", Value: "8001"},
			{Name: "CHROMA_COLLECTION", Value: "ragcraft"},
		}
	default:
		return nil
	}
}

// backendFrameworkBlock appends server-binding variables for frameworks that
// read their listen address from the environment, plus local storage
// variables when at least one data source was configured.
func backendFrameworkBlock(opts Options) []Descriptor {
	var entries []Descriptor

	switch opts.Framework {
	case constants.FrameworkFastAPI, constants.FrameworkExpress:
		entries = append(entries,
			Descriptor{
				Name:        "APP_HOST",
				Description: "The address to start the backend app.",
				Value:       "0.0.0.0",
			},
			Descriptor{
				Name:        "APP_PORT",
				Description: "The port to start the backend app.",
				Value:       fmt.Sprintf("%d", opts.EffectivePort()),
			},
		)
	}

	if len(opts.DataSources) > 0 {
		entries = append(entries,
			Descriptor{
				Name:        "STORAGE_DIR",
				Description: "The directory to store the local index data.",
				Value:       "storage",
			},
			Descriptor{
				Name:        "FILESERVER_URL_PREFIX",
				Description: "The URL prefix serving uploaded data-source files.",
			},
		)
	}

	return entries
}

// frontendBlock mirrors the model name into a client-visible variable and
// points the UI at the backend chat endpoint.
func frontendBlock(model string, opts Options) []Descriptor {
	return []Descriptor{
		{
			Name:        "NEXT_PUBLIC_MODEL",
			Description: "The model name exposed to the browser build.",
			Value:       model,
		},
		{
			Name:        "NEXT_PUBLIC_CHAT_API",
			Description: "The backend chat endpoint the UI talks to.",
			Value:       fmt.Sprintf("http://localhost:%d/api/chat", opts.EffectivePort()),
		},
	}
}
