package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidJSON is returned when the body is not exactly one JSON value.
	ErrInvalidJSON = errors.New("invalid json in request")
	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrNullBody is returned for a literal null body; there is nothing to
	// read fields from.
	ErrNullBody = errors.New("request body is null")
)

// BindAndValidate binds the JSON body into `out` and runs validation.
// It does not write a response; callers classify the error with errors.Is.
//
// Any well-formed JSON value is accepted. Values other than objects carry
// no fields and so fail the required checks.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	raw, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if !json.Valid(raw) {
		return ErrInvalidJSON
	}

	switch bytes.TrimSpace(raw)[0] {
	case '{':
		if err := binding.JSON.BindBody(raw, out); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	case 'n':
		return ErrNullBody
	default:
		// strings, numbers, booleans and arrays leave every field unset
	}

	if err := v.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, fieldList(err))
	}
	return nil
}

func fieldList(err error) []string {
	var names []string
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			names = append(names, fe.Field())
		}
		return names
	}
	return []string{err.Error()}
}
