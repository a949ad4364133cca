// Package main is the entry point for the unosolo CLI.
package main

import "unosolo.dev/pkg/unosolo/cmd"

func main() {
	cmd.Execute()
}
