package mock

import (
	"context"

	"github.com/fwojciec/rescontext"
)

var _ rescontext.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of rescontext.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *rescontext.Report) (string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *rescontext.Report) (string, error) {
	return w.WriteReportFn(ctx, report)
}
