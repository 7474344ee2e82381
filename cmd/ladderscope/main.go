// Package main is the ladderscope command line tool.
package main

import "github.com/ladderscope/core/cmd/ladderscope/cmd"

func main() {
	cmd.Execute()
}
