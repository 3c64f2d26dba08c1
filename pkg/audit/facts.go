package audit

import (
	"encoding/json"
	"fmt"

	"github.com/uilint/core/pkg/domain"
)

const (
	// ReportVersion is the fact report schema version this module accepts.
	ReportVersion = "1"

	// ReportSuffix is the file name suffix extraction front ends give
	// fact report files.
	ReportSuffix = ".facts.json"
)

// FactReport is the document an extraction front end emits for one
// analyzed test file: the file's identity plus every classified call
// site found in it, in source order.
type FactReport struct {
	// Version is the report schema version; must equal ReportVersion.
	Version string `json:"version"`

	// TestFile is the project-relative path of the analyzed test file.
	TestFile string `json:"testFile"`

	// Frontend optionally names the tool that produced the report.
	Frontend string `json:"frontend,omitempty"`

	// Facts are the classified call sites.
	Facts []domain.CallSiteFact `json:"facts"`
}

// DecodeReport parses and validates one fact report document. Facts
// whose location carries no file path inherit the report's test file,
// so findings always point somewhere.
func DecodeReport(data []byte) (*FactReport, error) {
	var rep FactReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse fact report: %w", err)
	}

	if rep.Version != ReportVersion {
		return nil, fmt.Errorf("unsupported fact report version %q (want %q)", rep.Version, ReportVersion)
	}
	if rep.TestFile == "" {
		return nil, fmt.Errorf("fact report missing testFile")
	}
	if rep.Facts == nil {
		return nil, fmt.Errorf("fact report missing facts")
	}

	for i := range rep.Facts {
		if rep.Facts[i].Location.File == "" {
			rep.Facts[i].Location.File = rep.TestFile
		}
	}

	return &rep, nil
}
