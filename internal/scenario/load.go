package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the scenario file schema major version this build reads.
const SupportedMajor = "v1"

// ErrInvalidScenarioFile wraps parse, schema and version failures of a scenario file.
var ErrInvalidScenarioFile = errors.New("invalid scenario file")

//go:embed scenarios.schema.json
var schemaJSON []byte

const schemaURL = "schema://scenarios.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError describes why a scenario file was rejected.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidScenarioFile, e.Err}
}

type fileDoc struct {
	SchemaVersion string     `yaml:"schema_version"`
	Scenarios     []Scenario `yaml:"scenarios"`
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	scs, err := parse(data)
	if err != nil {
		return nil, &ValidationError{Path: path, Err: err}
	}
	return scs, nil
}

// Parse decodes and validates an in-memory scenario document.
func Parse(data []byte) ([]Scenario, error) {
	scs, err := parse(data)
	if err != nil {
		return nil, &ValidationError{Path: "<input>", Err: err}
	}
	return scs, nil
}

func parse(data []byte) ([]Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if err := checkVersion(doc.SchemaVersion); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Scenarios))
	for _, sc := range doc.Scenarios {
		if seen[sc.Key] {
			return nil, fmt.Errorf("duplicate scenario key %q", sc.Key)
		}
		seen[sc.Key] = true
	}
	return doc.Scenarios, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("schema_version %q is not a semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("schema_version %s is not supported (want %s.x.y)", v, SupportedMajor)
	}
	return nil
}

// validateDocument checks a decoded YAML value against the embedded schema.
func validateDocument(raw any) error {
	// Round-trip through JSON so the validator sees JSON-native types.
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
