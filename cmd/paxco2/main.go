package main

import (
	"context"
	"log"
	"os"
)

// main is the application composition root.
// It wires file, HTTP and cache adapters behind ports and runs the comparison once.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Printf("paxco2: %v", err)
		os.Exit(1)
	}
}
