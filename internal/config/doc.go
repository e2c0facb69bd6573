// Package config loads Cutline settings.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//	1. Built-in defaults (Default)
//	2. The configuration file: config.toml in the preferences directory,
//	   or any TOML/YAML file given explicitly
//	3. Environment variables prefixed with CUTLINE_
//
// The preferences directory is $CUTLINE_CONFIG_DIR, or "cutline" under the
// user configuration directory. The log file lives there too.
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Log.Level)
//
// # Sub-packages
//
//   - loader: file (TOML, YAML) and environment loading into maps
package config
