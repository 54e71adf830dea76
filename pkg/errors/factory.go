// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Factory creates errors with a given code. Skip is the number of additional
// frames to skip when recording the call site.
type Factory[Status statusType] struct {
	Skip        int
	Code        Status
	UnknownCode Status
}

// Wrap returns nil if err is nil. Otherwise it returns an error with the
// factory's code caused by err.
func (f Factory[Status]) Wrap(err error) error {
	if err == nil {
		// Returning a typed nil here would produce a non-nil error
		return nil
	}

	// Nothing would be added
	if !trackLocation && !f.Code.IsKnownError() {
		if _, ok := err.(*ErrorBase[Status]); ok {
			return err
		}
	}

	e := f.new()
	e.setCause(f.convert(err))
	return e
}

// With returns an error whose message is fmt.Sprint(v...).
func (f Factory[Status]) With(v ...interface{}) *ErrorBase[Status] {
	e := f.new()
	e.Message = fmt.Sprint(v...)
	return e
}

// WithFormat returns an error whose message is fmt.Sprintf(format, args...).
// If the format wraps an error with %w, that error becomes the cause.
func (f Factory[Status]) WithFormat(format string, args ...interface{}) *ErrorBase[Status] {
	e := f.new()
	err := fmt.Errorf(format, args...)
	e.Message = err.Error()
	if cause := errors.Unwrap(err); cause != nil {
		e.setCause(f.convert(cause))
	}
	return e
}

// WithCauseAndFormat is WithFormat with an explicit cause.
func (f Factory[Status]) WithCauseAndFormat(cause error, format string, args ...interface{}) *ErrorBase[Status] {
	e := f.new()
	e.Message = fmt.Sprintf(format, args...)
	e.setCause(f.convert(cause))
	return e
}

// new records the caller of the exported method that called it.
func (f Factory[Status]) new() *ErrorBase[Status] {
	e := &ErrorBase[Status]{Code: f.Code}
	e.recordCallSite(3 + f.Skip)
	return e
}

// convert returns err as an ErrorBase, preserving the code of any status or
// ErrorBase in its chain.
func (f Factory[Status]) convert(err error) *ErrorBase[Status] {
	var e *ErrorBase[Status]
	if errors.As(err, &e) {
		return e
	}
	if err == nil {
		return &ErrorBase[Status]{Code: f.UnknownCode, Message: "(nil)"}
	}

	var code Status
	if errors.As(err, &code) {
		return &ErrorBase[Status]{Code: code, Message: err.Error()}
	}

	e = &ErrorBase[Status]{Code: f.UnknownCode, Message: err.Error()}
	if cause := errors.Unwrap(err); cause != nil {
		e.setCause(f.convert(cause))
	}
	return e
}

func (e *ErrorBase[Status]) recordCallSite(depth int) {
	if !trackLocation {
		return
	}

	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return
	}

	site := &CallSite{File: file, Line: int64(line)}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.FuncName = fn.Name()
	}
	e.CallStack = append(e.CallStack, site)
}
