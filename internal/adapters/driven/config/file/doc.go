// Package file provides TOML file-based configuration loading.
//
// Configuration lives in a single config.toml under the docquery config
// directory. Missing files and missing keys fall back to defaults, so a
// fresh installation works without any configuration at all.
package file
