package message

import (
	"strconv"
)

// Mensagem inicial presente no quadro desde a subida do processo
const (
	SeedFrom = "Bart"
	SeedText = "Welcome to CYF chat system!"
)

// Message representa uma mensagem publicada no quadro
type Message struct {
	ID   int    `json:"id"`
	From string `json:"from"`
	Text string `json:"text"`
}

// Draft contém os dados enviados pelo cliente antes da criação da mensagem
type Draft struct {
	From string `validate:"required"`
	Text string `validate:"required"`
}

// NewSeedMessage cria a mensagem de boas-vindas com ID 0
func NewSeedMessage() Message {
	return Message{ID: 0, From: SeedFrom, Text: SeedText}
}

// ParseID converte o ID recebido na URL. Valores não inteiros retornam false
// e devem ser tratados como mensagem inexistente.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
