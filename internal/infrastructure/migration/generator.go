package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Generator writes new, empty migration files into the source tree. They are
// picked up by the embedded FS on the next build.
type Generator struct {
	root string
	now  func() time.Time
}

func NewGenerator(root string) *Generator {
	return &Generator{root: root, now: time.Now}
}

// Create writes the skeleton for tool and dialect and returns the paths.
func (g *Generator) Create(tool, driver, name string) ([]string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" {
		return nil, fmt.Errorf("migration name is required")
	}

	dialect, err := dialectDir(driver)
	if err != nil {
		return nil, err
	}
	stamp := g.now().UTC().Format("20060102150405")

	var files map[string]string
	switch tool {
	case ToolGoose, "":
		files = map[string]string{
			filepath.Join(g.root, "goose", dialect, fmt.Sprintf("%s_%s.sql", stamp, name)): "-- +goose Up\n\n-- +goose Down\n",
		}
	case ToolGolangMigrate:
		dir := filepath.Join(g.root, "migrate", dialect)
		files = map[string]string{
			filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", stamp, name)):   fmt.Sprintf("-- Migration: %s\n", name),
			filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", stamp, name)): fmt.Sprintf("-- Rollback: %s\n", name),
		}
	default:
		return nil, fmt.Errorf("unknown migration tool: %s", tool)
	}

	paths := make([]string, 0, len(files))
	for p, content := range files {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
