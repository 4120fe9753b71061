// Command rtree answers geometric queries about rendering-tree fixtures.
//
// Usage:
//
//	rtree bounds scene.yaml
//	rtree hit scene.yaml --point 75,75
//	rtree locals scene.yaml --point 10,10
//	rtree stats scene.yaml --repeat 100
//
// Settings are read from RTREE_* environment variables and can be
// overridden with flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
