// Package app wires application dependencies for the CLI.
//
// It loads Config through viper, builds the zerolog logger and constructs
// the concrete stores, gateway client, system readers and services, exposing
// them via the Wire struct for commands to use.
package app
