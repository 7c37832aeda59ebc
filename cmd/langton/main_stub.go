//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of langton requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/langton` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless run, use ./cmd/langton-trace instead.")
	os.Exit(2)
}
