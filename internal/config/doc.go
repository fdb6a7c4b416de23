// Package config loads and validates bindkit.json, the project
// configuration for the Bindkit server and CLI.
package config
