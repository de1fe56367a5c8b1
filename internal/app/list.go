// Where: cli/internal/app/list.go
// What: List command.
// Why: Show the closed set of scaffold choices without reading the source.
package app

import (
	"io"

	"github.com/ragcraft/ragcraft/internal/constants"
	"github.com/ragcraft/ragcraft/internal/ui"
)

func runList(_ CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	console.Header("🧩", "Backend frameworks")
	for _, id := range deps.Templates.BackendIDs() {
		tpl, _ := deps.Templates.Backend(id)
		console.Item(tpl.ID, tpl.Label)
	}

	console.Header("🗄️", "Vector stores")
	for _, id := range constants.VectorStores() {
		console.ItemPlain(id)
	}
	return 0
}
