// Package static serves the embedded web assets.
package static

import (
	"embed"
	"net/http"
)

//go:embed styles.css
var assetsFS embed.FS

// Handler serves the embedded assets by file name.
func Handler() http.Handler {
	return http.FileServer(http.FS(assetsFS))
}
