// cmd/prip-rules/main.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"prip/internal/appshell"
	"prip/internal/ruleapp"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: .env not loaded: %v\n", err)
	}
	appshell.Main(ruleapp.RunContext)
}
