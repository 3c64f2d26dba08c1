package domain

import "fmt"

// Location identifies where a call site sits in a test source file.
// Lines and columns are 1-based; zero means unknown.
type Location struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine,omitempty"`
	StartCol  int    `json:"startCol,omitempty"`
	EndCol    int    `json:"endCol,omitempty"`
}

// String renders the location as file:line for logs and error messages.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("line %d", l.StartLine)
	}
	return fmt.Sprintf("%s:%d", l.File, l.StartLine)
}
