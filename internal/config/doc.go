// Package config loads AidFinder's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/aidfinder/config.toml (default)
//  3. If the config file doesn't exist, start from hardcoded defaults
//  4. Apply AIDFINDER_* environment variables on top
//  5. Fill remaining empty fields with defaults and validate
//
// # Default Values
//
//   - Config file: ~/.config/aidfinder/config.toml
//   - Data directory: ~/.local/share/aidfinder
//   - Storage backend: file (<data_dir>/storage.toml)
//   - Log file: <data_dir>/aidfinder.log
//   - Log level: info
//
// # TOML Format
//
//	data_dir = "~/.local/share/aidfinder"
//	storage = "sqlite"      # file | sqlite | memory
//	log_file = "/tmp/aidfinder.log"
//	log_level = "debug"     # debug | info | warn | error
//
// All fields are optional. Tilde expansion is performed for data_dir and
// log_file.
//
// # Environment Overrides
//
//   - AIDFINDER_DATA_DIR
//   - AIDFINDER_STORAGE
//   - AIDFINDER_LOG_FILE
//   - AIDFINDER_LOG_LEVEL
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable or unparsable
// files and invalid values. A missing file is not an error.
package config
