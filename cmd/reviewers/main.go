package main

import (
	"os"

	"github.com/reviewers-cli/reviewers/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
