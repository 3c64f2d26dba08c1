package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FindingsFile is the name of the JSON artifact written into the
// output directory.
const FindingsFile = "findings.json"

func WriteJSON(outDir string, doc *Document) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, FindingsFile)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return path, nil
}
