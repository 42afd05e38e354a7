package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/quarrel/quiver"
)

// LibraryFile is the quarrel library every player draws from.
const LibraryFile = "quarrels.yaml"

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a behavior script, preferring the copy on disk so edited
// scripts are picked up without a rebuild.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// LoadLibrary reads and parses the quarrel library.
func LoadLibrary() (quiver.Library, error) {
	data, err := Load(LibraryFile)
	if err != nil {
		return quiver.Library{}, fmt.Errorf("prefabs: load %s: %w", LibraryFile, err)
	}
	return quiver.ParseLibrary(data)
}

// IsLibrary reports whether path names the quarrel library.
func IsLibrary(path string) bool {
	return filepath.Base(filepath.ToSlash(path)) == LibraryFile
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
		}
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
