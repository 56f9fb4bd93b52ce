// Command schemagen generates Go schema declarations from a YAML
// schema definition.
//
// Usage:
//
//	schemagen -in signup.yaml -out signup_schema.go [-pkg signup]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit/internal/schemagen"
)

func main() {
	var (
		in  = flag.String("in", "", "path to the YAML schema definition")
		out = flag.String("out", "", "path of the generated Go file (stdout when empty)")
		pkg = flag.String("pkg", "", "package name override")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *in == "" {
		logger.Error("missing -in flag")
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read definition", "path", *in, "error", err)
		os.Exit(1)
	}

	def, err := schemagen.Parse(data)
	if err != nil {
		logger.Error("failed to parse definition", "path", *in, "error", err)
		os.Exit(1)
	}
	if *pkg != "" {
		def.Package = *pkg
	}

	src, err := schemagen.Generate(def)
	if err != nil {
		logger.Error("failed to generate schema", "schema", def.Schema, "error", err)
		os.Exit(1)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			logger.Error("failed to write output", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Error("failed to write output", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("schema generated", "schema", def.Schema, "out", *out)
}
