package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchemaJSON)

// FileVersion is written by Export.
const FileVersion = 1

// File is the on-disk layout of a catalog.
type File struct {
	Version   int          `yaml:"version,omitempty"`
	Scenarios []Definition `yaml:"scenarios"`
}

var ErrSchema = errors.New("catalog does not match schema")

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	defs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Load parses a YAML catalog, checks it against the embedded JSON schema,
// then validates every entry.
func Load(r io.Reader) ([]Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := ValidateAll(file.Scenarios); err != nil {
		return nil, err
	}
	return file.Scenarios, nil
}

// validateSchema round-trips the YAML tree through JSON so the validator
// sees plain JSON values.
func validateSchema(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode catalog for schema check: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode catalog for schema check: %w", err)
	}
	if err := catalogSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// Export writes defs as a YAML catalog that Load accepts.
func Export(w io.Writer, defs []Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: FileVersion, Scenarios: defs}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
