package agent

import "errors"

// Agent errors. Schema violations and budget exhaustion are handled inside
// the turn loop and never surface to the end user as hard failures.
var (
	// ErrToolNotFound indicates the reasoner requested an unregistered tool.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolSchemaViolation indicates tool arguments that failed validation
	// against the declared input schema.
	ErrToolSchemaViolation = errors.New("tool arguments violate schema")

	// ErrReasonerUnavailable indicates the reasoning service failed.
	ErrReasonerUnavailable = errors.New("reasoning service unavailable")
)
