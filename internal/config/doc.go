// Package config manages user-level settings stored at ~/.cogmd/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the extensions directory override and the default log level.
package config
