package validator

import (
	"encoding/json"
	"fmt"
	"hotelops/config"
	"hotelops/shared/failure"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// decimalValue lets numeric tags such as gt=0 or gte=0 apply to money fields.
func decimalValue(field reflect.Value) any {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		return value.InexactFloat64()
	}

	return nil
}

// jsonName reports fields the way clients spell them.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	// hotelops defers to the field type's own Validate(*config.Config) error, used by the domain enums.
	err := validate.RegisterValidation("hotelops", func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if !method.IsValid() {
			return false
		}

		result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

		return result[0].IsNil()
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it. Both failures are bad requests.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
