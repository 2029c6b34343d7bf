// Package main enables generics to execute as a CLI tool
package main

import (
	"os"

	"github.com/callmeBron/generics/internal/app"
)

func main() {
	os.Exit(app.Run())
}
