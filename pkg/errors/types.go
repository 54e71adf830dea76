// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is a request status code.
type Status uint64

type statusType interface {
	~uint64
	error
	String() string
	IsKnownError() bool
}

// Error is an error with a status code, a message, an optional cause, and the
// call sites it passed through.
type Error = ErrorBase[Status]

type ErrorBase[Status statusType] struct {
	Message   string
	Code      Status
	Cause     *ErrorBase[Status]
	CallStack []*CallSite
}

type CallSite struct {
	FuncName string
	File     string
	Line     int64
}

var trackLocation = true

// EnableLocationTracking causes new errors to record the call site.
func EnableLocationTracking() { trackLocation = true }

// DisableLocationTracking stops new errors from recording the call site.
func DisableLocationTracking() { trackLocation = false }
