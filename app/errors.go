package app

import "github.com/ayoisaiah/unwind/internal/apperr"

var (
	errMissingActivity = &apperr.Error{
		Message: "an activity key is required (see `unwind list`)",
	}

	errUnknownActivity = &apperr.Error{
		Message: "no activity with key %q (see `unwind list`)",
	}

	errUnknownCategory = &apperr.Error{
		Message: "unknown category %q: expected calm, focus or energy",
	}

	errUnknownPeriod = &apperr.Error{
		Message: "unknown period %q: expected all-time, today, 7days or 30days",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value",
	}
)
