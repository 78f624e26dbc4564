package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID é o cabeçalho usado para propagar o ID da requisição
const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID garante que toda requisição tenha um ID, reaproveitando o enviado pelo cliente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}

// GetRequestID retorna o ID da requisição armazenado no contexto
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
