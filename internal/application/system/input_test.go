package system

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputState_Moving(t *testing.T) {
	assert.False(t, InputState{}.Moving())
	assert.False(t, InputState{LookX: 3, ToggleTorch: true}.Moving())
	assert.True(t, InputState{Forward: true}.Moving())
	assert.True(t, InputState{Left: true}.Moving())
}

// The headless runner links these packages; none of them may pull in ebiten.
func TestSimulationPackages_DoNotImportEbiten(t *testing.T) {
	dirs := []string{
		".",
		"../session",
		"../autopilot",
		"../replay",
		"../report",
		"../state",
		"../../domain/entity",
		"../../domain/nav",
		"../../domain/sound",
		"../../infrastructure/config",
		"../../../cmd/headless",
	}

	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(dir, "*.go"))
			require.NoError(t, err)
			require.NotEmpty(t, files)

			for _, f := range files {
				if strings.HasSuffix(f, "_test.go") {
					continue
				}
				src, err := os.ReadFile(f)
				require.NoError(t, err)
				file, err := parser.ParseFile(token.NewFileSet(), f, src, parser.ImportsOnly)
				require.NoError(t, err)
				for _, imp := range file.Imports {
					path, err := strconv.Unquote(imp.Path.Value)
					require.NoError(t, err)
					assert.NotContains(t, path, "hajimehoshi/ebiten", "%s imports %s", f, path)
				}
			}
		})
	}
}
