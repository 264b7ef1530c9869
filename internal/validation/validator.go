package validation

import (
	"reflect"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/prsportstore/order-notifier/internal/orders"
)

// New returns a validator that understands orders.Value fields.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// `required` on a Value means "truthy": absent, null, "", 0 and false
	// all fail.
	v.RegisterCustomTypeFunc(orderValueType, orders.Value{})

	return v
}

func orderValueType(field reflect.Value) interface{} {
	val, ok := field.Interface().(orders.Value)
	if !ok {
		return nil
	}
	if !val.Truthy() {
		return ""
	}
	return val.String()
}
