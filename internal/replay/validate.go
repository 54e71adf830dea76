// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package replay

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand/digest"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

var planValidator = sync.OnceValues(newValidator)

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("digest-alg", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			panic(fmt.Errorf("%q is not a string", fl.FieldName()))
		}

		_, err := digest.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	return v, err
}

// Validate checks the plan's draw operations, counts, and hash algorithms.
// Inputs are checked when they are accumulated.
func (p *Plan) Validate() error {
	v, err := planValidator()
	if err != nil {
		return errors.InternalError.WithFormat("create validator: %w", err)
	}

	err = v.Struct(p)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid plan: %w", err)
	}
	return nil
}
