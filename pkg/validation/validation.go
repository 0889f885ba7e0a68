// Package validation valida los DTOs de entrada a partir de sus tags `validate`.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve validator/v10 reportando los campos con su nombre JSON.
type Validator struct {
	v *validator.Validate
}

// New construye el validador.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = f.Tag.Get("query")
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s y devuelve un error legible con el primer campo inválido, o nil.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return errors.New(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %q es requerido", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("el campo %q debe tener al menos %s elemento(s)", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("el campo %q debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("el campo %q debe ser mayor o igual a %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("el campo %q admite como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("el campo %q debe ser menor o igual a %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("el campo %q debe ser un email válido", field)
	case "datetime":
		return fmt.Sprintf("el campo %q debe tener el formato %s", field, fe.Param())
	default:
		return fmt.Sprintf("el campo %q no cumple la regla %q", field, fe.Tag())
	}
}

// fieldPath quita el nombre del struct raíz: "CreateSaleRequest.listaDetalleVenta[0].cantidad" -> "listaDetalleVenta[0].cantidad".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
