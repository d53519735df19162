//go:build tools

package timer

// Pin lint tooling so `go mod` tracks it.
import (
	_ "github.com/kisielk/errcheck"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
