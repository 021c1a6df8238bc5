// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package main is the entry point for the ghiqc CLI.
package main

import "github.com/similigh/ghiqc/cmd/ghiqc/commands"

var version = "0.1.0"

func main() {
	commands.Execute(version)
}
