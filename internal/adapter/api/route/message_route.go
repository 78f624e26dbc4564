package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mikinet/chat-server/internal/adapter/api/controller"
)

// RegisterMessageRoutes registra as rotas do módulo de mensagens
func RegisterMessageRoutes(r gin.IRouter, messageController *controller.MessageController) {
	messages := r.Group("/messages")
	{
		messages.GET("", messageController.List)
		messages.GET("/search", messageController.Search)
		messages.GET("/latest", messageController.Latest)
	}

	single := r.Group("/message")
	{
		single.POST("", messageController.Create)
		single.GET("/:id", messageController.Get)
		single.DELETE("/:id", messageController.Delete)
	}
}
