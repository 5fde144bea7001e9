// pkg/verify/verify.go

package verify

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs go-playground struct-tag validation on obj.
func Struct(obj interface{}) error {
	if err := validate.Struct(obj); err != nil {
		return cerr.WithHint(err, "struct validation failed")
	}
	return nil
}
