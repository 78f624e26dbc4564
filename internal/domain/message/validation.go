package message

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldMessages mapeia o campo do rascunho para a mensagem exibida ao usuário
var fieldMessages = map[string]string{
	"From": MsgMissingName,
	"Text": MsgMissingText,
}

// Validate verifica o rascunho e retorna um erro por campo ausente.
// Uma lista vazia significa que o rascunho pode ser gravado.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}

	err := validate.Struct(d)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append(errs, ValidationError{Msg: err.Error()})
	}

	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		errs = append(errs, ValidationError{Msg: msg})
	}
	return errs
}
