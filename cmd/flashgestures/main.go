// Package main starts the FlashGestures host.
package main

import "flag"

// main is the entrypoint for the FlashGestures host.
func main() {
	debug := flag.Bool("debug", false, "Enable gesture transition logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
