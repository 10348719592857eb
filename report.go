package rescontext

import (
	"context"
	"time"
)

// Report is a completed research run ready for persistence.
type Report struct {
	Query     string    `json:"query"`
	Context   string    `json:"context"`
	Answer    string    `json:"answer,omitempty"`
	Results   []Result  `json:"results"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "report query required")
	}
	return nil
}

// ReportWriter persists research reports.
type ReportWriter interface {
	// WriteReport writes the report and returns the path of the
	// stored artifact.
	WriteReport(ctx context.Context, report *Report) (string, error)
}
