// File: cmd/flipper-terminal/unsupported.go
//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("flipper-terminal needs a linux terminal; use flipper-desktop instead")
	os.Exit(1)
}
