// Package config provides configuration management for confdiff.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Tree: file discovery settings (extension)
//   - Log: logging level and format
//
// Defaults come from 'default' struct tags and can be overridden through
// the environment, e.g. TREE_EXTENSION=ini or LOG_FORMAT=json.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Tree.Extension)
package config
