package schema

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MaxFieldBytes bounds any single net row or path.
const MaxFieldBytes = 64 << 10

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("maxbytes", validateMaxBytes)
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxFieldBytes
}

// Validate checks the document's struct tags and returns every failure as an
// AggregateError of ValidationError.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	aggr := &AggregateError{}
	for _, fe := range fieldErrs {
		aggr.Errors = append(aggr.Errors, &ValidationError{
			Key:    fe.Namespace(),
			Reason: reason(fe),
			Value:  fe.Value(),
		})
	}
	return aggr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "maxbytes":
		return fmt.Sprintf("exceeds %d bytes", MaxFieldBytes)
	case "gt":
		return "must be greater than " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag()
}
