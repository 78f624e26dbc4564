package dto

import (
	"github.com/mikinet/chat-server/internal/domain/message"
)

// MsgMessageNotFound é o texto devolvido quando a mensagem não existe
const MsgMessageNotFound = "Message not found."

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Msg string `json:"msg" example:"Message not found."`
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"1.0.0"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Msg: msg}
}

// ToValidationErrorResponse converte os erros de validação em uma lista de respostas
func ToValidationErrorResponse(errs message.ValidationErrors) []ErrorResponse {
	resp := make([]ErrorResponse, 0, len(errs))
	for _, e := range errs {
		resp = append(resp, NewErrorResponse(e.Msg))
	}
	return resp
}
