package report

import (
	"context"
	"time"
)

// ReportService reads punches, leaves, vacations, the time bank and overtime
// records to build summaries. It never writes.
type ReportService interface {
	DayStatuses(ctx context.Context, employeeID string, from, to time.Time) (DayStatusResponse, error)
	MonthlySummary(ctx context.Context, year int, month time.Month) (MonthlySummaryResponse, error)
	// ExportMonthlySummary renders the summary as an XLSX workbook.
	ExportMonthlySummary(ctx context.Context, year int, month time.Month) ([]byte, error)
}
