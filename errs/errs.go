// Package errs holds the error kinds shared by the analysis packages. Errors
// returned by the module wrap one of them; test with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidConfiguration is returned for unsupported languages, bad
	// worker counts, unknown statistic types and similar usage errors.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyInput is returned when a text, or a unit being measured, has
	// nothing to count.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingDependency is returned when a stage or reducer runs before
	// the stage that populates its input.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrUndefinedStatistic is returned for a statistic over an empty sample.
	ErrUndefinedStatistic = errors.New("undefined statistic")

	// ErrTextTooLong is returned for texts above the configured size limit.
	ErrTextTooLong = errors.New("text too long")
)
