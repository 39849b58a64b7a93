// Package seed loads sample analysis data from YAML fixtures through the service layer.
package seed

import (
	"embed"
	"fmt"
	"io"
	"os"

	models "analysisdesk/internal/domain/models/analysis"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// DefaultFixture is the embedded fixture used when no file is given
const DefaultFixture = "fixtures/default.yaml"

// Fixtures is the root of a seed file
type Fixtures struct {
	Projects []ProjectFixture `yaml:"projects"`
}

// ProjectFixture describes a project and everything it owns
type ProjectFixture struct {
	Name         string                `yaml:"name"`
	Description  *string               `yaml:"description"`
	StartDate    *string               `yaml:"start_date"`
	Status       *models.ProjectStatus `yaml:"status"`
	Color        *string               `yaml:"color"`
	Processes    []ProcessFixture      `yaml:"processes"`
	Stakeholders []StakeholderFixture  `yaml:"stakeholders"`
}

// ProcessFixture describes a process and its subprocesses
type ProcessFixture struct {
	Name         string              `yaml:"name"`
	Description  *string             `yaml:"description"`
	Color        *string             `yaml:"color"`
	Weight       *int                `yaml:"weight"`
	Subprocesses []SubprocessFixture `yaml:"subprocesses"`
}

// SubprocessFixture describes a subprocess
type SubprocessFixture struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// StakeholderFixture describes a stakeholder. Process and Subprocess refer to
// fixtures of the same project by name.
type StakeholderFixture struct {
	FullName   string  `yaml:"full_name"`
	Role       string  `yaml:"role"`
	Area       string  `yaml:"area"`
	Contact    string  `yaml:"contact"`
	Notes      *string `yaml:"notes"`
	Color      string  `yaml:"color"`
	Process    string  `yaml:"process"`
	Subprocess string  `yaml:"subprocess"`
}

// LoadFixtures decodes fixtures from a reader
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures YAML: %w", err)
	}
	return &f, nil
}

// LoadFixturesFromFile decodes fixtures from a file on disk
func LoadFixturesFromFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures file: %w", err)
	}
	defer file.Close()

	return LoadFixtures(file)
}

// LoadDefaultFixtures decodes the embedded default fixtures
func LoadDefaultFixtures() (*Fixtures, error) {
	file, err := fixtureFS.Open(DefaultFixture)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
	}
	defer file.Close()

	return LoadFixtures(file)
}
