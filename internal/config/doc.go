// Package config loads gridlegend configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into registry overrides.
package config
