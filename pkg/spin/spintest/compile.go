package spintest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/packages"
)

// CompileErrors type-checks src as a package inside the current module and
// returns its errors. src must be a complete file; its package clause is
// arbitrary. Tests use it to assert that a misuse of the spin rules does not
// compile:
//
//	errs := spintest.CompileErrors(t, `package p
//	import "github.com/aretw0/spinweighted/pkg/spin"
//	...`)
//	require.NotEmpty(t, errs)
//
// The source is written to a temporary directory under the working
// directory, so the go command resolves module imports normally. It is
// removed when the test ends.
func CompileErrors(tb testing.TB, src string) []packages.Error {
	tb.Helper()

	wd, err := os.Getwd()
	if err != nil {
		tb.Fatalf("failed to get working directory: %v", err)
	}
	dir, err := os.MkdirTemp(wd, "compilecheck")
	if err != nil {
		tb.Fatalf("failed to create check directory: %v", err)
	}
	tb.Cleanup(func() { os.RemoveAll(dir) })

	if err := os.WriteFile(filepath.Join(dir, "check.go"), []byte(src), 0o644); err != nil {
		tb.Fatalf("failed to write check source: %v", err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		tb.Fatalf("failed to load check package: %v", err)
	}
	if len(pkgs) != 1 {
		tb.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	for _, e := range pkgs[0].Errors {
		tb.Logf("compile check: %s", e)
	}
	return pkgs[0].Errors
}

// Rejects reports whether src fails to compile. It is CompileErrors for
// callers that only need the verdict.
func Rejects(tb testing.TB, src string) bool {
	tb.Helper()
	return len(CompileErrors(tb, src)) > 0
}

// Program wraps body in a main function of a file importing the spin and
// vector packages.
func Program(body string) string {
	return fmt.Sprintf(`package compilecheck

import (
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

var (
	_ spin.Zero
	_ vector.Real
)

func main() {
%s
}
`, body)
}
