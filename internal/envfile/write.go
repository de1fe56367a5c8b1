// Where: cli/internal/envfile/write.go
// What: Write rendered .env content into a project directory.
// Why: Keep the single filesystem touch point of the renderer in one place.
package envfile

import (
	"os"
	"path/filepath"
)

// FileName is the dotenv file written at each project root.
const FileName = ".env"

// Write renders the descriptors and writes them to <root>/.env, replacing
// any existing file. There is no merge with prior content and no backup.
func Write(root string, entries []Descriptor) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, FileName), []byte(Render(entries)), 0o644)
}
