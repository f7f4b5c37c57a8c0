package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prip/internal/app"
)

// bigPDB writes a chain long enough that the pairwise scan is still
// underway when the context fires (n residues, n*(n-1)/2 pairs).
func bigPDB(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "ATOM  %5d  CA  ALA A%4d    %8.3f%8.3f%8.3f  1.00  0.00\n",
			i, i, float64(4*i), 0.0, 0.0)
	}
	path := filepath.Join(t.TempDir(), "big.pdb")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write pdb: %v", err)
	}
	return path
}

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	argv := []string{
		"--name", "near", "--group1", "ALA", "--group2", "ALA", "--distance", "5",
		bigPDB(t, 4000),
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

func TestCtrlC_BeforeScan_Exit130(t *testing.T) {
	argv := []string{
		"--name", "near", "--group1", "ALA", "--group2", "ALA", "--distance", "5",
		bigPDB(t, 50),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on pre-canceled context, got %d", code)
	}
}
