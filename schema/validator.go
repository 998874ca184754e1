// Package schema validates API response payloads against JSON Schema files
// stored in the repository, and can generate those files from a sample
// response.
package schema

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultRootDir is where schema files live unless a Validator is configured
// otherwise. One file per (resource directory, operation) pair.
const DefaultRootDir = "response-schemas"

// LoadError means the schema file for a validation was missing or unreadable.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load schema file %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MismatchError means the payload failed structural validation. It carries
// every violation plus a pretty-printed dump of the payload that failed.
type MismatchError struct {
	SchemaPath string
	Violations []string
	Payload    string
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "payload did not match schema %s:\n", e.SchemaPath)
	for _, v := range e.Violations {
		fmt.Fprintf(&sb, "  - %s\n", v)
	}
	fmt.Fprintf(&sb, "actual payload was:\n%s", e.Payload)
	return sb.String()
}

// Validator validates payloads against schema files under a root directory.
type Validator struct {
	rootDir string
}

// NewValidator creates a Validator. An empty rootDir means DefaultRootDir.
func NewValidator(rootDir string) *Validator {
	if rootDir == "" {
		rootDir = DefaultRootDir
	}
	return &Validator{rootDir: rootDir}
}

// Path returns the conventional schema file location for an operation.
func (v *Validator) Path(resourceDir, operation string) string {
	return filepath.Join(v.rootDir, resourceDir, operation+"_schema.json")
}

// Validate checks payload against the stored schema for (resourceDir,
// operation). With generate set, it first infers a schema from the payload's
// shape and writes it to the conventional location, overwriting any existing
// file, then validates the payload against what it just wrote.
func (v *Validator) Validate(resourceDir, operation string, payload ldvalue.Value, generate bool) error {
	path := v.Path(resourceDir, operation)

	if generate {
		if err := v.generate(path, payload); err != nil {
			return err
		}
	}

	schemaData, err := ioutil.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	payloadData, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	result, err := compiled.Validate(gojsonschema.NewBytesLoader(payloadData))
	if err != nil {
		return err
	}
	if !result.Valid() {
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return &MismatchError{
			SchemaPath: path,
			Violations: violations,
			Payload:    prettyPayload(payload),
		}
	}
	return nil
}

func (v *Validator) generate(path string, payload ldvalue.Value) error {
	doc := Infer(payload)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

func prettyPayload(payload ldvalue.Value) string {
	var decoded interface{}
	if err := json.Unmarshal([]byte(payload.JSONString()), &decoded); err != nil {
		return payload.JSONString()
	}
	data, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return payload.JSONString()
	}
	return string(data)
}
