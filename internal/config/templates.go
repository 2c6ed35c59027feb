package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Daytrader Journal Configuration

[storage]
# Directory holding the per-user JSON documents (watchlists, plans,
# reflections). Created on first use.
#data_dir = "~/.config/daytrader/data"
# SQLite file backing the user table.
#users_db = "~/.config/daytrader/users.db"
# Username for multi-user mode. Leave empty for a single-user install.
username = ""

[auth]
# Password digest: "sha256" (legacy, unsalted) or "bcrypt" (salted).
# Changing this does not migrate digests already stored.
hasher = "sha256"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the terminal
console = true
# Log to a rotating file under the config directory
file = true

[ui]
# Enable colored output
color_enabled = true
# Date format for display
date_format = "2006-01-02"
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
