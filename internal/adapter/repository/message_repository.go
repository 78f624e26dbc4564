package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/mikinet/chat-server/internal/domain/message"
	"github.com/samber/lo"
)

// InMemoryMessageRepository implementa message.Repository mantendo as
// mensagens em memória durante a vida do processo
type InMemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []message.Message
	onChange func(size int)
}

// Option configura o repositório em memória
type Option func(*InMemoryMessageRepository)

// WithSizeObserver registra uma função chamada após cada alteração da coleção
func WithSizeObserver(fn func(size int)) Option {
	return func(r *InMemoryMessageRepository) {
		r.onChange = fn
	}
}

// NewInMemoryMessageRepository cria o repositório já com a mensagem de boas-vindas
func NewInMemoryMessageRepository(opts ...Option) *InMemoryMessageRepository {
	r := &InMemoryMessageRepository{
		messages: []message.Message{message.NewSeedMessage()},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.notify()
	return r
}

// List implementa message.Repository.List
func (r *InMemoryMessageRepository) List(_ context.Context) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(r.messages), nil
}

// FindByID implementa message.Repository.FindByID
func (r *InMemoryMessageRepository) FindByID(_ context.Context, id int) (message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := lo.Find(r.messages, func(m message.Message) bool {
		return m.ID == id
	})
	if !ok {
		return message.Message{}, message.ErrMessageNotFound
	}
	return msg, nil
}

// Search implementa message.Repository.Search
func (r *InMemoryMessageRepository) Search(_ context.Context, term string) ([]message.Message, error) {
	if term == "" {
		return nil, message.ErrMissingSearchTerm
	}
	term = strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.messages, func(m message.Message, _ int) bool {
		return strings.Contains(strings.ToLower(m.Text), term)
	}), nil
}

// Latest implementa message.Repository.Latest
func (r *InMemoryMessageRepository) Latest(_ context.Context, limit int) ([]message.Message, error) {
	if limit <= 0 {
		limit = message.DefaultLatestLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.messages) <= limit {
		return r.snapshot(r.messages), nil
	}
	return r.snapshot(r.messages[len(r.messages)-limit:]), nil
}

// Append implementa message.Repository.Append. Em caso de falha de validação
// retorna message.ValidationErrors e não altera a coleção.
func (r *InMemoryMessageRepository) Append(_ context.Context, draft message.Draft) ([]message.Message, error) {
	if errs := message.Validate(draft); len(errs) > 0 {
		return nil, errs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message.Message{
		ID:   len(r.messages),
		From: draft.From,
		Text: draft.Text,
	})
	r.notify()
	return r.snapshot(r.messages), nil
}

// Remove implementa message.Repository.Remove. A mensagem encontrada e todas
// as inseridas depois dela são removidas.
func (r *InMemoryMessageRepository) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, index, ok := lo.FindIndexOf(r.messages, func(m message.Message) bool {
		return m.ID == id
	})
	if !ok {
		return message.ErrMessageNotFound
	}

	clear(r.messages[index:])
	r.messages = r.messages[:index]
	r.notify()
	return nil
}

// Count implementa message.Repository.Count
func (r *InMemoryMessageRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}

func (r *InMemoryMessageRepository) snapshot(src []message.Message) []message.Message {
	out := make([]message.Message, len(src))
	copy(out, src)
	return out
}

// notify deve ser chamado com o lock de escrita adquirido (ou na construção)
func (r *InMemoryMessageRepository) notify() {
	if r.onChange != nil {
		r.onChange(len(r.messages))
	}
}

var _ message.Repository = (*InMemoryMessageRepository)(nil)
