package dto

import (
	"github.com/mikinet/chat-server/internal/domain/message"
)

// MessageRequest representa o corpo de criação de mensagem
type MessageRequest struct {
	From string `json:"from" example:"Alice"`
	Text string `json:"text" example:"hi"`
}

// MessageResponse representa uma mensagem devolvida pela API
type MessageResponse struct {
	ID   int    `json:"id" example:"1"`
	From string `json:"from" example:"Alice"`
	Text string `json:"text" example:"hi"`
}

// ToDraft converte a requisição para o rascunho do domínio
func (r MessageRequest) ToDraft() message.Draft {
	return message.Draft{From: r.From, Text: r.Text}
}

// ToMessageResponse converte uma entidade para o formato de resposta
func ToMessageResponse(m message.Message) MessageResponse {
	return MessageResponse{
		ID:   m.ID,
		From: m.From,
		Text: m.Text,
	}
}

// ToMessageListResponse converte uma lista de entidades, sempre retornando um array
func ToMessageListResponse(messages []message.Message) []MessageResponse {
	resp := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, ToMessageResponse(m))
	}
	return resp
}
