package dto

import (
	"reflect"
	"strings"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that tags like min=0 work
	// without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Codes are single tokens: the operator types them at a prompt and they
	// are matched verbatim.
	_ = validate.RegisterValidation("sinespacios", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
	})
}

// Validate runs the struct's validate tags and returns an
// *apperror.ValidationError describing every failing field.
func Validate(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.FromValidator(err)
	}
	return nil
}
