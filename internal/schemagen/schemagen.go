// Package schemagen turns a declarative YAML schema description into a
// Go source file with the same schema.New/schema.Add calls a developer
// would write by hand. It is an offline convenience; the generated
// entries are behaviorally indistinguishable from hand-written ones.
package schemagen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"regexp"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

var (
	// ErrFailedToParseDefinition is returned when the input document is not valid YAML.
	ErrFailedToParseDefinition = errors.New("failed to parse schema definition")

	// ErrInvalidDefinition is returned when the document is well-formed but inconsistent.
	ErrInvalidDefinition = errors.New("invalid schema definition")
)

// Definition is the declarative description of one schema.
type Definition struct {
	Package string     `yaml:"package"`
	Schema  string     `yaml:"schema"`
	Var     string     `yaml:"var"`
	Fields  []FieldDef `yaml:"fields"`
}

// FieldDef describes one field: its key, value type, optional initial
// value (a verbatim Go literal) and validator list.
type FieldDef struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Initial    string   `yaml:"initial"`
	Validators []string `yaml:"validators"`
}

// goTypes maps definition type names to Go types.
var goTypes = map[string]string{
	"string":  "string",
	"int":     "int",
	"float":   "float64",
	"bool":    "bool",
	"time":    "time.Time",
	"strings": "[]string",
	"file":    "*validator.File",
}

// validatorSpec matches "name" or "name(arg)".
var validatorSpec = regexp.MustCompile(`^([a-z_]+)(?:\((.*)\))?$`)

// Parse decodes and checks a definition document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseDefinition, err)
	}

	if def.Schema == "" {
		return nil, fmt.Errorf("%w: missing schema name", ErrInvalidDefinition)
	}
	if def.Package == "" {
		def.Package = strings.ToLower(def.Schema)
	}
	if def.Var == "" {
		def.Var = exportName(def.Schema)
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("%w: schema %q declares no fields", ErrInvalidDefinition, def.Schema)
	}

	seen := make(map[string]bool)
	for _, f := range def.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field with empty name", ErrInvalidDefinition)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, f.Name)
		}
		seen[f.Name] = true
		if _, ok := goTypes[f.Type]; !ok {
			return nil, fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidDefinition, f.Name, f.Type)
		}
		for _, v := range f.Validators {
			if _, err := validatorExpr(v, goTypes[f.Type]); err != nil {
				return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidDefinition, f.Name, err)
			}
		}
	}
	return &def, nil
}

// validatorExpr maps a validator spec string to a Go constructor call
// for a field of the given Go type.
func validatorExpr(spec, goType string) (string, error) {
	m := validatorSpec.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return "", fmt.Errorf("malformed validator spec %q", spec)
	}
	name, arg := m[1], m[2]

	bare := func(call string) (string, error) {
		if arg != "" {
			return "", fmt.Errorf("validator %q takes no argument", name)
		}
		return call, nil
	}
	withArg := func(callFormat string) (string, error) {
		if arg == "" {
			return "", fmt.Errorf("validator %q requires an argument", name)
		}
		return fmt.Sprintf(callFormat, arg), nil
	}

	switch name {
	case "required":
		return bare(fmt.Sprintf("validator.Required[%s]()", goType))
	case "email":
		return bare("validator.Email()")
	case "phone":
		return bare("validator.Phone()")
	case "pattern":
		if arg == "" {
			return "", fmt.Errorf("validator %q requires an argument", name)
		}
		return fmt.Sprintf("validator.Pattern(regexp.MustCompile(`%s`))", arg), nil
	case "min_length":
		return withArg("validator.MinLength(%s)")
	case "max_length":
		return withArg("validator.MaxLength(%s)")
	case "min":
		return withArg("validator.Min(" + goType + "(%s))")
	case "max":
		return withArg("validator.Max(" + goType + "(%s))")
	case "min_items":
		return withArg("validator.MinItems[string](%s)")
	case "max_items":
		return withArg("validator.MaxItems[string](%s)")
	case "file_type":
		return withArg("validator.FileType(%s)")
	default:
		return "", fmt.Errorf("unknown validator %q", name)
	}
}

func exportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

type fieldRender struct {
	VarName string
	Key     string
	GoType  string
	Options []string
}

type fileRender struct {
	Package string
	Var     string
	Schema  string
	Imports []string
	Fields  []fieldRender
}

var fileTemplate = template.Must(template.New("schema").Parse(`// Code generated by schemagen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)

var (
	{{.Var}} = schema.New({{printf "%q" .Schema}})
{{range .Fields}}
	{{.VarName}} = schema.Add[{{.GoType}}]({{$.Var}}, {{printf "%q" .Key}}{{range .Options}},
		{{.}}{{end}})
{{end}})
`))

// Generate renders the definition into gofmt-formatted Go source.
func Generate(def *Definition) ([]byte, error) {
	render := fileRender{
		Package: def.Package,
		Var:     def.Var,
		Schema:  def.Schema,
	}

	needsRegexp := false
	needsTime := false
	needsValidator := false

	for _, f := range def.Fields {
		goType := goTypes[f.Type]
		fr := fieldRender{
			VarName: exportName(f.Name),
			Key:     f.Name,
			GoType:  goType,
		}
		if goType == "time.Time" {
			needsTime = true
		}
		if goType == "*validator.File" {
			needsValidator = true
		}

		if len(f.Validators) > 0 {
			exprs := make([]string, len(f.Validators))
			for i, v := range f.Validators {
				expr, err := validatorExpr(v, goType)
				if err != nil {
					return nil, err
				}
				if strings.Contains(expr, "regexp.MustCompile") {
					needsRegexp = true
				}
				exprs[i] = expr
			}
			needsValidator = true
			fr.Options = append(fr.Options, fmt.Sprintf("schema.WithValidators(%s)", strings.Join(exprs, ", ")))
		}
		if f.Initial != "" {
			fr.Options = append(fr.Options, fmt.Sprintf("schema.WithInitial[%s](%s)", goType, f.Initial))
		}
		render.Fields = append(render.Fields, fr)
	}

	if needsRegexp {
		render.Imports = append(render.Imports, `"regexp"`)
	}
	if needsTime {
		render.Imports = append(render.Imports, `"time"`)
	}
	if len(render.Imports) > 0 {
		// Blank line between the stdlib and module import groups.
		render.Imports = append(render.Imports, ``)
	}
	render.Imports = append(render.Imports, `"github.com/dmitrymomot/formkit/pkg/schema"`)
	if needsValidator {
		render.Imports = append(render.Imports, `"github.com/dmitrymomot/formkit/pkg/validator"`)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, render); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}
