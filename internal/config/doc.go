// Package config manages user-level settings stored at ~/.fynemvc/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default module prefix and toolchain versions used by create-project.
package config
