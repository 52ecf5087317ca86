package recognition

import (
	"time"

	"github.com/google/uuid"

	"github.com/pagelift/pagelift/backend/internal/dom"
)

// Diagnostic is a non-fatal problem encountered during a walk, tied to the
// structural path of the node it occurred on.
type Diagnostic struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Stats summarizes one analysis run.
type Stats struct {
	Nodes        int   `json:"nodes"`
	Unknown      int   `json:"unknown"`
	ManualReview int   `json:"manual_review"`
	DurationMS   int64 `json:"duration_ms"`
}

// Report is the serializable result of analyzing one document: the analyzed
// tree, walk diagnostics, and run statistics. Exporters read the tree's
// recognition fields to decide between auto-generation and human escalation.
type Report struct {
	ID          string           `json:"id"`
	Meta        dom.Meta         `json:"meta"`
	Root        *AnalyzedElement `json:"root"`
	Diagnostics []Diagnostic     `json:"diagnostics,omitempty"`
	Stats       Stats            `json:"stats"`
}

func newReport(meta dom.Meta, root *AnalyzedElement, diags []Diagnostic, elapsed time.Duration) *Report {
	stats := Stats{DurationMS: elapsed.Milliseconds()}
	root.Walk(func(n *AnalyzedElement) {
		stats.Nodes++
		if n.Recognition.ComponentType == TypeUnknown {
			stats.Unknown++
		}
		if n.Recognition.ManualReviewNeeded {
			stats.ManualReview++
		}
	})

	return &Report{
		ID:          uuid.NewString(),
		Meta:        meta,
		Root:        root,
		Diagnostics: diags,
		Stats:       stats,
	}
}
