package form

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired      = "Campo obrigatório"
	msgBillsMin      = "Você deve incluir pelo menos um item."
	msgBillDesc      = "Por favor, informe uma descrição válida."
	msgBillValue     = "Por favor, informe um valor válido"
	msgIMEI          = "IMEI do dispositivo é obrigatório ter no mínimo 15 dígitos."
	fieldBills       = "bills"
	fieldPrefixCheck = "checklist."
)

var fieldMessages = map[string]string{
	"date":            "Data é obrigatório",
	"number":          "Número é obrigatório",
	"client_name":     "Nome do cliente é obrigatório",
	"client_phone":    "Telefone do cliente é obrigatório",
	"client_document": "Documento do cliente é obrigatório",
	"client_zipcode":  "CEP do cliente é obrigatório",
	"client_address":  "Endereço do cliente é obrigatório",
	"client_number":   "Número do cliente é obrigatório",
	"client_state":    "Estado do cliente é obrigatório",
	"client_city":     "Cidade do cliente é obrigatória",
	"device_brand":    "Marca do dispositivo é obrigatória",
	"device_model":    "Modelo do dispositivo é obrigatório",
	"device_password": "Senha do dispositivo é obrigatória",
	"device_serial":   "Número de série do dispositivo é obrigatório",
	"device_imei":     msgIMEI,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is a validation failure attached to a form field, addressed by its
// JSON path (e.g. "client_name", "checklist.wifi", "bills[0].value").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult lists every failing field; it is valid when empty.
type ValidationResult struct {
	FieldErrors []FieldError `json:"field_errors"`
}

func (r ValidationResult) Valid() bool {
	return len(r.FieldErrors) == 0
}

// Err returns a *ValidationError, or nil when the form is valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{FieldErrors: r.FieldErrors}
}

type ValidationError struct {
	FieldErrors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{FieldErrors: []FieldError{{Field: field, Message: message}}}
}

func validateStruct(s any) ValidationResult {
	err := validate.Struct(s)
	if err == nil {
		return ValidationResult{}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationResult{FieldErrors: []FieldError{{Field: "", Message: err.Error()}}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out = append(out, FieldError{Field: field, Message: messageFor(field)})
	}
	return ValidationResult{FieldErrors: out}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(field string) string {
	switch {
	case field == fieldBills:
		return msgBillsMin
	case strings.HasPrefix(field, fieldBills+"["):
		if strings.HasSuffix(field, ".description") {
			return msgBillDesc
		}
		return msgBillValue
	case strings.HasPrefix(field, fieldPrefixCheck):
		return msgRequired
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return msgRequired
}
