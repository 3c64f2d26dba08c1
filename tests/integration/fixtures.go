//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/uilint/core/pkg/audit"
	"github.com/uilint/core/pkg/domain"
)

// Fixture describes one synthetic project whose fact reports get
// audited end to end.
type Fixture struct {
	Name    string          `yaml:"name"`
	Reports []FixtureReport `yaml:"reports"`
	Broken  []BrokenReport  `yaml:"broken"`
	Expect  Expectation     `yaml:"expect"`
}

// FixtureReport describes one well-formed fact report to materialize.
type FixtureReport struct {
	Path     string        `yaml:"path"`
	TestFile string        `yaml:"testFile"`
	Facts    []FixtureFact `yaml:"facts"`
}

// FixtureFact is a single fact entry, kept minimal for readable YAML.
type FixtureFact struct {
	Kind string `yaml:"kind"`
	Line int    `yaml:"line"`
}

// BrokenReport is raw content written verbatim, for decode-error cases.
type BrokenReport struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Expectation holds the golden counts an audit of the fixture must
// produce against the built-in catalog.
type Expectation struct {
	Findings      int `yaml:"findings"`
	High          int `yaml:"high"`
	Medium        int `yaml:"medium"`
	Low           int `yaml:"low"`
	FailedReports int `yaml:"failedReports"`
}

// FixturesConfig holds the list of fixtures to audit.
type FixturesConfig struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadFixtures loads fixture definitions from testdata/fixtures.yaml.
func LoadFixtures() (*FixturesConfig, error) {
	data, err := os.ReadFile(filepath.Join("testdata", "fixtures.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read fixtures config: %w", err)
	}

	var cfg FixturesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse fixtures config: %w", err)
	}
	if len(cfg.Fixtures) == 0 {
		return nil, fmt.Errorf("fixtures config lists no fixtures")
	}

	return &cfg, nil
}

// Materialize writes the fixture's report files under root.
func (f Fixture) Materialize(root string) error {
	for _, rep := range f.Reports {
		doc := audit.FactReport{
			Version:  audit.ReportVersion,
			TestFile: rep.TestFile,
			Frontend: "fixture",
		}
		for _, fact := range rep.Facts {
			doc.Facts = append(doc.Facts, domain.CallSiteFact{
				Kind:     domain.FactKind(fact.Kind),
				Location: domain.Location{File: rep.TestFile, StartLine: fact.Line},
			})
		}
		if doc.Facts == nil {
			doc.Facts = []domain.CallSiteFact{}
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report %s: %w", rep.Path, err)
		}
		if err := writeFile(filepath.Join(root, rep.Path), data); err != nil {
			return err
		}
	}

	for _, rep := range f.Broken {
		if err := writeFile(filepath.Join(root, rep.Path), []byte(rep.Content)); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
