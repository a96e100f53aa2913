// Package assets embeds the default tuning and map so the binaries run
// without any files next to them.
package assets

import (
	"embed"
	"io/fs"
	"os"

	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// Default file names
const (
	TuningFile = "tuning.yaml"
	MapFile    = "final_map.txt"
)

//go:embed tuning.yaml final_map.txt
var files embed.FS

// FS returns the embedded asset filesystem
func FS() fs.FS {
	return files
}

// Loader returns a config loader over dir, or over the embedded assets when dir is empty
func Loader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(files, ".")
	}
	return config.NewFSLoader(os.DirFS(dir), dir)
}
