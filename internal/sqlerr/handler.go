package sqlerr

import (
	"github.com/avelline/tally/internal/errs"
)

// HandleError converts a raw database error into an API-facing HTTPError.
//
// This is the fallback path of the global error funnel: repository code
// normally translates driver errors into domain errors itself, so
// anything arriving here escaped that translation. Unknown errors become
// a generic 500 so driver details never leak to clients.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch Classify(err) {
	case NoRows:
		return errs.NewNotFoundError("Requested record not found", false, nil)
	case UniqueViolation:
		return errs.NewBadRequestError("A record with this identifier already exists", false, nil, nil)
	case NotNullViolation:
		return errs.NewBadRequestError("A required field is missing", false, nil, nil)
	case CheckViolation:
		return errs.NewBadRequestError("One or more values do not meet required conditions", false, nil, nil)
	default:
		return errs.NewInternalServerError()
	}
}
