package main

import "github.com/embedgen/file2header/cmd"

// main is the entry point of the file2header CLI application.
// It executes the root command which handles argument dispatch and encoding.
func main() {
	cmd.Execute()
}
