// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	Execute()
	atexit.Exit(EXIT_OK)
}
