// Command cleardemo runs the clear pass over a configured scene on the
// software backend and writes every window and image as a PNG.
//
// Usage:
//
//	cleardemo --config scene.toml --output out/
//	cleardemo plan --config scene.toml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
