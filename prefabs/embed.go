package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScene is the scene file loaded when no other path is given.
const DefaultScene = "scene.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns the named prefab, preferring a copy on disk under prefabs/ so
// tuning can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadFile reads a prefab from an explicit path. A bare name falls back to Load.
func LoadFile(path string) ([]byte, error) {
	if path == "" {
		return Load(DefaultScene)
	}
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	return Load(path)
}

// ModTime returns when the scene file on disk was last written. name may be
// a path or a bare prefab name under prefabs/. ok is false when neither
// exists, which means Load serves the embedded copy.
func ModTime(name string) (t time.Time, ok bool) {
	info, err := os.Stat(name)
	if err != nil {
		info, err = os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	}
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Changed reports whether name was written since last. A file that cannot be
// stat'ed counts as changed so the caller's load reports the problem.
func Changed(name string, last time.Time) (time.Time, bool) {
	mod, ok := ModTime(name)
	if !ok {
		return time.Time{}, true
	}
	return mod, !mod.Equal(last)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
