package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikinet/chat-server/internal/adapter/api/dto"
	"github.com/mikinet/chat-server/internal/domain/message"
	"github.com/mikinet/chat-server/pkg/logger"
)

// MessageController gerencia as requisições relacionadas a mensagens
type MessageController struct {
	messageRepo message.Repository
	logger      logger.Logger
	latestLimit int
}

// NewMessageController cria uma nova instância de MessageController
func NewMessageController(messageRepo message.Repository, logger logger.Logger, latestLimit int) *MessageController {
	if latestLimit <= 0 {
		latestLimit = message.DefaultLatestLimit
	}
	return &MessageController{
		messageRepo: messageRepo,
		logger:      logger,
		latestLimit: latestLimit,
	}
}

// List retorna todas as mensagens
// @Summary Listar mensagens
// @Description Retorna todas as mensagens na ordem de inserção
// @Tags messages
// @Produce json
// @Success 200 {array} dto.MessageResponse
// @Router /messages [get]
func (c *MessageController) List(ctx *gin.Context) {
	messages, err := c.messageRepo.List(ctx)
	if err != nil {
		c.internalError(ctx, "erro ao listar mensagens", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

// Get retorna uma mensagem pelo ID
// @Summary Buscar mensagem
// @Description Retorna uma mensagem pelo ID. IDs não numéricos são tratados como inexistentes
// @Tags messages
// @Produce json
// @Param id path string true "ID da mensagem"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /message/{id} [get]
func (c *MessageController) Get(ctx *gin.Context) {
	id, ok := message.ParseID(ctx.Param("id"))
	if !ok {
		c.notFound(ctx)
		return
	}

	msg, err := c.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, message.ErrMessageNotFound) {
			c.notFound(ctx)
			return
		}
		c.internalError(ctx, "erro ao buscar mensagem", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageResponse(msg))
}

// Create cria uma nova mensagem
// @Summary Criar mensagem
// @Description Cria uma mensagem e retorna a coleção completa. Falhas de validação retornam 200 com a lista de erros
// @Tags messages
// @Accept json
// @Produce json
// @Param message body dto.MessageRequest true "Dados da mensagem"
// @Success 201 {array} dto.MessageResponse
// @Success 200 {array} dto.ErrorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /message [post]
func (c *MessageController) Create(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	messages, err := c.messageRepo.Append(ctx, req.ToDraft())
	if err != nil {
		var verrs message.ValidationErrors
		if errors.As(err, &verrs) {
			// o front-end espera 200 com a lista de erros
			ctx.JSON(http.StatusOK, dto.ToValidationErrorResponse(verrs))
			return
		}
		c.internalError(ctx, "erro ao salvar mensagem", err)
		return
	}

	c.logger.Debug("mensagem criada", "id", messages[len(messages)-1].ID)
	ctx.JSON(http.StatusCreated, dto.ToMessageListResponse(messages))
}

// Delete remove uma mensagem e todas as posteriores
// @Summary Excluir mensagem
// @Description Remove a mensagem informada e todas as mensagens inseridas depois dela
// @Tags messages
// @Param id path string true "ID da mensagem"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /message/{id} [delete]
func (c *MessageController) Delete(ctx *gin.Context) {
	id, ok := message.ParseID(ctx.Param("id"))
	if !ok {
		c.notFound(ctx)
		return
	}

	if err := c.messageRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, message.ErrMessageNotFound) {
			c.notFound(ctx)
			return
		}
		c.internalError(ctx, "erro ao excluir mensagem", err)
		return
	}

	c.logger.Debug("mensagem excluída", "id", id)
	ctx.Status(http.StatusNoContent)
}

// Search busca mensagens pelo texto
// @Summary Buscar mensagens por texto
// @Description Retorna as mensagens cujo texto contém o termo, sem diferenciar maiúsculas e minúsculas
// @Tags messages
// @Produce json
// @Param text query string true "Termo de busca"
// @Success 200 {array} dto.MessageResponse
// @Failure 400
// @Router /messages/search [get]
func (c *MessageController) Search(ctx *gin.Context) {
	messages, err := c.messageRepo.Search(ctx, ctx.Query("text"))
	if err != nil {
		if errors.Is(err, message.ErrMissingSearchTerm) {
			ctx.Status(http.StatusBadRequest)
			return
		}
		c.internalError(ctx, "erro ao buscar mensagens", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

// Latest retorna as mensagens mais recentes
// @Summary Mensagens recentes
// @Description Retorna as últimas mensagens na ordem de inserção
// @Tags messages
// @Produce json
// @Success 200 {array} dto.MessageResponse
// @Router /messages/latest [get]
func (c *MessageController) Latest(ctx *gin.Context) {
	messages, err := c.messageRepo.Latest(ctx, c.latestLimit)
	if err != nil {
		c.internalError(ctx, "erro ao listar mensagens recentes", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

func (c *MessageController) notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MsgMessageNotFound))
}

func (c *MessageController) internalError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, "error", err)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msg))
}
