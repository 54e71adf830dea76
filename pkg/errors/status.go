// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"fmt"
	"strings"
)

const (
	// OK means the request completed successfully.
	OK Status = 200

	// BadRequest means the request was malformed or invalid.
	BadRequest Status = 400

	// NotFound means a record could not be found.
	NotFound Status = 404

	// InvalidRange means the lower bound of a range is greater than the upper
	// bound.
	InvalidRange Status = 416

	// EmptyPopulation means a shuffle or sample was requested over an empty
	// collection.
	EmptyPopulation Status = 422

	// InternalError means an internal error occurred.
	InternalError Status = 500

	// UnknownError means an unknown error occurred.
	UnknownError Status = 501

	// EncodingError means encoding or decoding failed.
	EncodingError Status = 502
)

var statusNames = map[Status]string{
	OK:              "ok",
	BadRequest:      "badRequest",
	NotFound:        "notFound",
	InvalidRange:    "invalidRange",
	EmptyPopulation: "emptyPopulation",
	InternalError:   "internalError",
	UnknownError:    "unknownError",
	EncodingError:   "encodingError",
}

// String returns the name of the status code.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status:%d", uint64(s))
}

// StatusByName returns the named status code.
func StatusByName(name string) (Status, bool) {
	for s, n := range statusNames {
		if strings.EqualFold(n, name) {
			return s, true
		}
	}
	return 0, false
}

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is neither zero nor UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true for 4xx codes.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true for 5xx codes.
func (s Status) IsServerError() bool { return s >= 500 }

// Error returns the name of the status, so a bare status can be returned or
// matched as an error.
func (s Status) Error() string { return s.String() }

// Skip returns a factory that skips n more frames when recording call sites.
// Helpers that create errors on behalf of their caller use Skip(1).
func (s Status) Skip(n int) Factory[Status] {
	return Factory[Status]{Skip: n, Code: s, UnknownCode: UnknownError}
}

// Wrap returns nil if err is nil, otherwise an error with this status caused
// by err.
func (s Status) Wrap(err error) error {
	return s.Skip(1).Wrap(err)
}

// With returns an error with this status and the message fmt.Sprint(v...).
func (s Status) With(v ...interface{}) *Error {
	return s.Skip(1).With(v...)
}

// WithFormat returns an error with this status and a formatted message. An
// error wrapped with %w becomes the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	return s.Skip(1).WithFormat(format, args...)
}

// WithCauseAndFormat returns an error with this status, a cause, and a
// formatted message.
func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	return s.Skip(1).WithCauseAndFormat(cause, format, args...)
}
