package layouts

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var LayoutsFS embed.FS

// Dir is the on-disk directory checked before the embedded copies. Files
// there win so layouts can be edited without rebuilding.
var Dir = "layouts"

func Load(name string) ([]byte, error) {
	clean := cleanLayoutPath(name)
	if data, err := os.ReadFile(diskLayoutPath(clean)); err == nil {
		return data, nil
	}
	return LayoutsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanLayoutPath(name)
	info, err := os.Stat(diskLayoutPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanLayoutPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "layouts/"); ok {
		return after
	}
	return s
}

func diskLayoutPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
