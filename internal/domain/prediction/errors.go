package prediction

import "errors"

var (
	// ErrModelUnavailable indicates the prediction service could not be reached.
	ErrModelUnavailable = errors.New("prediction service unavailable")
	// ErrMalformedResponse indicates the prediction service returned an
	// unparseable or incomplete body.
	ErrMalformedResponse = errors.New("malformed prediction response")
	// ErrInvalidInput indicates invalid input for prediction operations.
	ErrInvalidInput = errors.New("invalid prediction input")
)
