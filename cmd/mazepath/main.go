// mazepath solves grid mazes from the command line and over HTTP.
//
// Usage:
//
//	mazepath solve   [--scenario=<name|path>] [--algorithm=astar|bfs|dfs] [--animate] [--speed=fast]
//	mazepath compare [--scenario=<name|path>]
//	mazepath serve   [--addr=:8080]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
