// Package gridlegend provides the command-line interface for the legend
// registry. It configures subcommands (categories, color, label, check,
// export, serve, etc.), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/gridlegend/gridlegend/cmd/gridlegend"
//	func main() { gridlegend.Execute() }
package gridlegend
