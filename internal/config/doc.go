// Package config loads and validates YAML configuration files.
package config
