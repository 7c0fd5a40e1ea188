package main

import (
	"os"

	"github.com/dalemusser/studylink/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
