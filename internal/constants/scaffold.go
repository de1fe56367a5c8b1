// Where: cli/internal/constants/scaffold.go
// What: Scaffolding identifier and default constants.
// Why: Centralize framework/store identifiers to avoid typos and inconsistencies.
package constants

const (
	// Backend frameworks
	FrameworkFastAPI = "fastapi"
	FrameworkExpress = "express"

	// Frontend framework (the only supported one today)
	FrameworkNextJS = "nextjs"

	// Vector stores
	VectorStoreNone     = "none"
	VectorStoreMongo    = "mongo"
	VectorStorePG       = "pg"
	VectorStorePinecone = "pinecone"
	VectorStoreMilvus   = "milvus"
	VectorStoreQdrant   = "qdrant"
	VectorStoreChroma   = "chroma"

	// Defaults applied when the user supplies nothing
	DefaultModel          = "gpt-4o-mini"
	DefaultEmbeddingModel = "text-embedding-3-small"
	DefaultPort           = 8000

	// Provider key variable names
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// VectorStores lists the selectable vector stores in display order.
func VectorStores() []string {
	return []string{
		VectorStoreNone,
		VectorStoreMongo,
		VectorStorePG,
		VectorStorePinecone,
		VectorStoreMilvus,
		VectorStoreQdrant,
		VectorStoreChroma,
	}
}
