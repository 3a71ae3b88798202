package main

import (
	"flag"
	"os"

	"github.com/jsvensson/colorwheel/internal/lsp"
)

var version = "dev"

func main() {
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	s := lsp.NewServer(version, *verbosity)
	if err := s.Run(); err != nil {
		os.Exit(1)
	}
}
