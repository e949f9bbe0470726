package natgen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// Limit is the largest Max accepted by Generate.
const Limit = 32

// ErrInvalidConfig is returned for an empty package name or a Max outside
// [1, Limit].
var ErrInvalidConfig = errors.New("natgen: invalid config")

// Config describes the numeral family to generate.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Max is the largest numeral.
	Max int
}

// DefaultConfig returns the configuration used for package typenat.
func DefaultConfig() Config {
	return Config{
		Package: "typenat",
		Max:     Limit,
	}
}

// Generate returns the formatted Go source for the numeral family described
// by cfg.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Package == "" {
		return nil, fmt.Errorf("%w: empty package name", ErrInvalidConfig)
	}
	if cfg.Max < 1 || cfg.Max > Limit {
		return nil, fmt.Errorf("%w: max %d not in [1, %d]", ErrInvalidConfig, cfg.Max, Limit)
	}

	g := &generator{}
	g.header(cfg)
	for k := 0; k <= cfg.Max; k++ {
		g.numeral(k, cfg.Max)
	}

	src, err := imports.Process("nat_gen.go", g.buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

type generator struct {
	buf bytes.Buffer
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) header(cfg Config) {
	g.printf("// Code generated by natgen. DO NOT EDIT.\n\n")
	g.printf("package %s\n\n", cfg.Package)

	g.printf("// MaxRank is the largest rank with a numeral.\n")
	g.printf("const MaxRank = %d\n\n", cfg.Max)

	terms := make([]string, 0, cfg.Max+1)
	for k := 0; k <= cfg.Max; k++ {
		terms = append(terms, fmt.Sprintf("~[%d]uint", k))
	}
	g.printf("// IxArray is the set of index arrays, one per numeral.\n")
	g.printf("type IxArray interface {\n")
	g.printf("\t%s\n", strings.Join(terms, " | "))
	g.printf("}\n")
}

func (g *generator) numeral(k, last int) {
	name := numeralName(k)

	g.printf("\n// %s is the type-level natural number %d. Its index array is [%d]uint.\n", name, k, k)
	g.printf("type %s struct{}\n", name)

	g.printf("\n// Value returns %d.\n", k)
	g.printf("func (%s) Value() int {\n\treturn %d\n}\n", name, k)

	g.printf("\nfunc (%s) ix() [%d]uint {\n\treturn [%d]uint{}\n}\n", name, k, k)

	if k > 0 {
		pre := numeralName(k - 1)
		g.printf("\n// Pre returns %s.\n", pre)
		g.printf("func (%s) Pre() %s {\n\treturn %s{}\n}\n", name, pre, pre)
	}
	if k < last {
		suc := numeralName(k + 1)
		g.printf("\n// Suc returns %s.\n", suc)
		g.printf("func (%s) Suc() %s {\n\treturn %s{}\n}\n", name, suc, suc)
	}

	g.printf("\nfunc (%s) String() string {\n\treturn %q\n}\n", name, name)
}

func numeralName(k int) string {
	return fmt.Sprintf("N%d", k)
}
