package main

import (
	"os"

	"github.com/baaaaaaaka/bootmenu/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
