// cmd/prip/main.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"prip/internal/app"
	"prip/internal/appshell"
)

func main() {
	// A .env can seed PRIP_RULES, PRIP_MAX_RULES and PRIP_HISTORY before
	// flag defaults are derived. Its absence is normal and silent.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: .env not loaded: %v\n", err)
	}
	appshell.Main(app.RunContext)
}
