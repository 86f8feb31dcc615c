package ports

import "pacplan/internal/types"

// FailureSinkPort persists failure records outside the pipeline's
// in-memory state. Records are append-only for the duration of a run.
type FailureSinkPort interface {
	Append(record types.FailureRecord) error
}
