package analysis

import "errors"

// ErrInvalidItem indicates the submitted item description was empty or unusable.
var ErrInvalidItem = errors.New("item description is empty or invalid")

// ErrServiceUnavailable indicates the generative service could not be reached
// or returned a transport-level failure.
var ErrServiceUnavailable = errors.New("analysis service unavailable")

// ErrAnalysisTimeout indicates the generative service did not answer in time.
var ErrAnalysisTimeout = errors.New("analysis timed out")

// ErrMalformedResponse indicates the model output was not JSON even after
// fence-stripping. The raw text stays server-side for diagnostics.
var ErrMalformedResponse = errors.New("model response is not valid JSON")

// ErrSchemaViolation indicates parsed JSON was missing a required field or
// carried a value that could not be safely coerced.
var ErrSchemaViolation = errors.New("model response violates the expected schema")
