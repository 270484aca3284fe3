package main

import (
	"os"

	"github.com/juhorosq/pwgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
