// Package config provides configuration management for the canonpack CLI.
//
// This package handles loading and validating the tool's own configuration
// file via Viper. It is distinct from the per-dialect document headers which
// are handled by the dialect packages.
//
// # Configuration File
//
// The default configuration file location is
// $XDG_CONFIG_HOME/canonpack/config.yaml (falling back to
// ~/.config/canonpack/config.yaml). The file uses YAML format:
//
//	version: 1
//	default_target: claude
//	strict: false
//	log_level: info
//	log_format: text
//	penalties:
//	  lossy_warning: 10
//	  subtype_mismatch: 20
//	  validation_error: 5
//
// Environment variables prefixed with CANONPACK_ override file values,
// e.g. CANONPACK_DEFAULT_TARGET=cursor.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// # Validation
//
// Use [Validate] to check a loaded configuration:
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
