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

// setCause sets the cause. An error without a known code takes the cause's
// code, and an error with neither a code nor a message becomes the cause.
func (e *ErrorBase[Status]) setCause(cause *ErrorBase[Status]) {
	e.Cause = cause
	if cause == nil || e.Code.IsKnownError() {
		return
	}

	if e.Message != "" {
		e.Code = cause.Code
		return
	}

	stack := e.CallStack
	*e = *cause
	e.CallStack = append(stack, cause.CallStack...)
}

// CodeID returns the numeric code.
func (e *ErrorBase[Status]) CodeID() uint64 {
	return uint64(e.Code)
}

func (e *ErrorBase[Status]) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return e.Code.String()
	}
}

// Unwrap returns the cause, or the code if there is none.
func (e *ErrorBase[Status]) Unwrap() error {
	if e.Cause == nil {
		return e.Code
	}
	return e.Cause
}

// Is returns true if the error or any of its causes has the target's code.
func (e *ErrorBase[Status]) Is(target error) bool {
	var code Status
	switch t := target.(type) {
	case *ErrorBase[Status]:
		code = t.Code
	case Status:
		code = t
	default:
		return false
	}

	for x := e; x != nil; x = x.Cause {
		if x.Code == code {
			return true
		}
	}
	return false
}

// Format prints the message, or with %+v the message, call stacks, and
// causes.
func (e *ErrorBase[Status]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		_, _ = f.Write([]byte(e.Print()))
		return
	}
	_, _ = f.Write([]byte(e.Error()))
}

// Print returns each error in the causal chain followed by its call stack.
// A message that ends with its cause's message is trimmed, so
// "decode: bad hex" is printed as
//
//	decode:
//	<call stack>
//
//	bad hex
//	<call stack>
func (e *ErrorBase[Status]) Print() string {
	if e.CallStack == nil {
		return e.Error()
	}

	var b strings.Builder
	for x := e; x != nil; x = x.Cause {
		if x != e {
			b.WriteString("\n")
		}

		msg := x.Message
		switch {
		case msg == "":
			msg = x.Code.String()
		case x.Cause != nil:
			msg = strings.TrimSuffix(msg, x.Cause.Message)
		}
		b.WriteString(msg)
		b.WriteString("\n")

		for _, site := range x.CallStack {
			fmt.Fprintf(&b, "%s\n    %s:%d\n", site.FuncName, site.File, site.Line)
		}
	}
	return b.String()
}
