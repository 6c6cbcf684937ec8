package engine

import "errors"

// Error kinds distinguish "fatal, no image produced" failures from each
// other so the trigger layer can map them to distinct responses.
var (
	// ErrInvalidDate marks request-validation failures (bad day/month
	// input). Nothing is rendered.
	ErrInvalidDate = errors.New("invalid reference date")

	// ErrAsset marks asset-precondition failures (missing background or
	// bubble image). The render aborts with zero bytes produced.
	ErrAsset = errors.New("render asset precondition failed")
)
