// Package testsupport provides fixture loading and sample data helpers for
// tests across the client packages.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-resource-client/model"
)

// LoadFixture loads test data from a fixture file. The path is relative to
// the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}
	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals
// it into dest.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// WriteGolden writes test output to a golden file, creating parent
// directories as needed.
func WriteGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write golden file to %s: %v", path, err)
	}
}

// CompareWithGolden compares actual data against the golden file at path.
// A missing golden file is created from the actual data.
func CompareWithGolden(t *testing.T, path string, actual []byte) {
	t.Helper()

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Logf("golden file %s does not exist, creating it", path)
			WriteGolden(t, path, actual)
			return
		}
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("output mismatch for %s:\nexpected:\n%s\nactual:\n%s", path, expected, actual)
	}
}

// SampleResource returns a valid document resource for tests.
func SampleResource(id, name string) model.Resource {
	return model.NewResource(id,
		model.NewResourceData(name, model.TypeDocument).
			WithData("content", "sample content").
			WithMetadata("origin", "testsupport"))
}

// SampleUser returns a valid user with the given role for tests.
func SampleUser(id, name string, role model.Role) model.User {
	return model.NewUser(id, name+"@example.com", name).WithRole(role)
}
