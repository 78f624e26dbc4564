package message

import (
	"errors"
	"strings"
)

// Erros específicos do domínio de mensagens
var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrMissingSearchTerm = errors.New("search term is required")
)

// Mensagens de validação devolvidas ao cliente
const (
	MsgMissingName = "Error: Missing chat information (Name)"
	MsgMissingText = "Error: Missing chat information (Message)"
)

// ValidationError descreve um campo inválido no formulário do chat
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// ValidationErrors agrupa todas as falhas de validação de um rascunho
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Msg)
	}
	return strings.Join(msgs, "; ")
}
