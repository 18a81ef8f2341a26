package punch

import "context"

// PunchService is the orchestrator: it persists the punch and derives ledger
// debits, overtime records and compensatory days as best-effort side effects.
type PunchService interface {
	// RecordPunch persists the punch (fatal on failure) and then runs the
	// derivation chain. Side-effect failures are logged, never surfaced; the
	// punch is the durable source of truth.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	GetPunch(ctx context.Context, id string) (PunchResponse, error)
	ListPunches(ctx context.Context, filter ListPunchFilter) (ListPunchResponse, error)
}
