package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "gotienda/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Os campos são reportados com o nome do JSON, que é o que o cliente enviou.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct valida uma struct com tags `validate` e traduz as falhas em ValidationError.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidationError(err.Error())
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = message(fe)
	}
	return apperror.NewFieldValidationError("Dados inválidos.", fields)
}

// fieldPath remove o nome da struct raiz: "SellerInput.links[0].url" vira "links[0].url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "url":
		return "URL inválida"
	case "uuid":
		return "deve ser um UUID válido"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "min":
		return "muito curto (mínimo " + fe.Param() + ")"
	case "max":
		return "muito longo (máximo " + fe.Param() + ")"
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	case "lte":
		return "deve ser menor ou igual a " + fe.Param()
	default:
		return "valor inválido"
	}
}
