package domain

// CallSiteFact is one classified call site reported by an extraction
// front end. Front ends own parsing and classification; this module
// never inspects test source text.
type CallSiteFact struct {
	// Kind is the fact's classification within the fixed vocabulary.
	Kind FactKind `json:"kind"`

	// Location is where the call site sits in the analyzed test file.
	Location Location `json:"location"`

	// Detail optionally carries the front end's source excerpt. It is
	// reporting payload only and never influences matching.
	Detail string `json:"detail,omitempty"`
}
