package message

import (
	"context"
)

// DefaultLatestLimit é o tamanho padrão da janela de mensagens recentes
const DefaultLatestLimit = 10

// Repository define as operações do armazenamento de mensagens
type Repository interface {
	// List retorna todas as mensagens na ordem de inserção
	List(ctx context.Context) ([]Message, error)

	// FindByID busca a primeira mensagem com o ID informado
	FindByID(ctx context.Context, id int) (Message, error)

	// Search retorna as mensagens cujo texto contém o termo, sem diferenciar maiúsculas
	Search(ctx context.Context, term string) ([]Message, error)

	// Latest retorna as últimas mensagens inseridas, mantendo a ordem original
	Latest(ctx context.Context, limit int) ([]Message, error)

	// Append valida e grava uma nova mensagem, retornando a coleção completa
	Append(ctx context.Context, draft Draft) ([]Message, error)

	// Remove apaga a mensagem encontrada e todas as posteriores
	Remove(ctx context.Context, id int) error

	// Count retorna a quantidade de mensagens armazenadas
	Count(ctx context.Context) (int, error)
}
