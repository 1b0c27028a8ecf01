// Package cli formats command results for the terminal as tables, JSON or
// YAML.
package cli
