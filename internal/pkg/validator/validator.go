package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fleet-logistics-service/internal/pkg/errors"
)

var validate *validator.Validate

// emailPattern - формат email, принятый для клиентов
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры. Ошибки поля переводятся в AppError с деталями.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithMessage("%s", err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := describe(fe)
		messages = append(messages, msg)
		details[fe.Field()] = msg
	}

	return errors.Validation("%s", strings.Join(messages, "; ")).WithDetails(details)
}

// IsEmail проверяет email по упрощённому RFC-шаблону
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email_shape":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
