package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config controls where sessions are found and where bulk operations write.
// PruneAgeDays is the default threshold for the age filter and the
// delete-older-than action.
type Config struct {
	ProjectsRoot string `toml:"projects_root"`
	ExportDir    string `toml:"export_dir"`
	ArchiveDir   string `toml:"archive_dir"`
	PruneAgeDays int    `toml:"prune_age_days"`
}

// Load reads ~/.config/ccsessionctl/config.toml over built-in defaults. A
// missing config file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ProjectsRoot: filepath.Join(home, ".claude", "projects"),
		ExportDir:    filepath.Join(home, "claude-sessions-export"),
		ArchiveDir:   filepath.Join(home, "claude-sessions-archive"),
		PruneAgeDays: 30,
	}

	cfgPath := filepath.Join(home, ".config", "ccsessionctl", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.ProjectsRoot = expandHome(cfg.ProjectsRoot, home)
	cfg.ExportDir = expandHome(cfg.ExportDir, home)
	cfg.ArchiveDir = expandHome(cfg.ArchiveDir, home)
	if cfg.PruneAgeDays <= 0 {
		cfg.PruneAgeDays = 30
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
