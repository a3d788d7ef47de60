// Command spingen writes the spin markers and the product/quotient table of
// package spin.
//
// Go generics cannot add integers at the type level, so every pair of
// operand spins gets its own Mul/Div function whose signature fixes the
// result spin. The table stays closed under the marker range: pairs whose
// result falls outside [-max, max] are not generated.
//
// Usage:
//
//	go run ./internal/spingen -max 4 -out pkg/spin
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

const header = "// Code generated by spingen; DO NOT EDIT.\n\npackage spin\n"

var weightsTmpl = template.Must(template.New("weights").Funcs(funcs).Parse(`
{{- range .}}
// {{name .}} marks spin weight {{.}}.
type {{name .}} struct{}

// Weight returns {{.}}.
func ({{name .}}) Weight() int { return {{.}} }

func ({{name .}}) isSpin() {}
{{end -}}
`))

var rulesTmpl = template.Must(template.New("rules").Funcs(funcs).Parse(`
{{- range .}}
// {{.Func}} {{.Verb}} a spin {{.Left}} field by a spin {{.Right}} field. The {{.Noun}} has spin {{.Result}}.
func {{.Func}}[T Storage[T]](a SpinWeighted[T, {{name .Left}}], b SpinWeighted[T, {{name .Right}}]) SpinWeighted[T, {{name .Result}}] {
	return SpinWeighted[T, {{name .Result}}]{data: a.data.{{.Method}}(b.data)}
}

// {{.Func}}With is {{.Func}} for compatible storage types resolved by r.
func {{.Func}}With[A Storage[A], B Storage[B], R Storage[R]](r Resolver[A, B, R], a SpinWeighted[A, {{name .Left}}], b SpinWeighted[B, {{name .Right}}]) SpinWeighted[R, {{name .Result}}] {
	return SpinWeighted[R, {{name .Result}}]{data: r.{{.Method}}(a.data, b.data)}
}
{{end -}}
`))

var funcs = template.FuncMap{"name": markerName}

// rule is one generated product or quotient.
type rule struct {
	Func   string
	Method string
	Verb   string
	Noun   string
	Left   int
	Right  int
	Result int
}

func markerName(w int) string {
	switch {
	case w == 0:
		return "Zero"
	case w > 0:
		return fmt.Sprintf("P%d", w)
	default:
		return fmt.Sprintf("N%d", -w)
	}
}

func weights(limit int) []int {
	ws := make([]int, 0, 2*limit+1)
	for w := -limit; w <= limit; w++ {
		ws = append(ws, w)
	}
	return ws
}

func rules(limit int) []rule {
	ops := []struct {
		name, verb, noun string
		combine          func(a, b int) int
	}{
		{"Mul", "multiplies", "product", func(a, b int) int { return a + b }},
		{"Div", "divides", "quotient", func(a, b int) int { return a - b }},
	}

	var out []rule
	for _, op := range ops {
		for _, left := range weights(limit) {
			for _, right := range weights(limit) {
				result := op.combine(left, right)
				if result < -limit || result > limit {
					continue
				}
				out = append(out, rule{
					Func:   op.name + markerName(left) + markerName(right),
					Method: op.name,
					Verb:   op.verb,
					Noun:   op.noun,
					Left:   left,
					Right:  right,
					Result: result,
				})
			}
		}
	}
	return out
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s output: %w", tmpl.Name(), err)
	}
	return src, nil
}

func main() {
	limit := flag.Int("max", 4, "largest absolute spin weight")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	files := []struct {
		name string
		tmpl *template.Template
		data any
	}{
		{"weights_gen.go", weightsTmpl, weights(*limit)},
		{"rules_gen.go", rulesTmpl, rules(*limit)},
	}

	for _, f := range files {
		src, err := render(f.tmpl, f.data)
		if err != nil {
			logger.Error("generate", "file", f.name, "error", err)
			os.Exit(1)
		}
		path := filepath.Join(*out, f.name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			logger.Error("write", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("generated", "path", path, "bytes", len(src))
	}
}
