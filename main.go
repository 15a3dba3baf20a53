// Package main provides the entry point for the ing2ofx CLI application.
package main

import (
	"fmt"
	"os"

	"ing2ofx/cmd/root"
)

func init() {
	root.Init()
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
