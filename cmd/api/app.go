package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikinet/chat-server/docs"
	"github.com/mikinet/chat-server/internal/adapter/api/controller"
	"github.com/mikinet/chat-server/internal/adapter/api/dto"
	"github.com/mikinet/chat-server/internal/adapter/api/route"
	"github.com/mikinet/chat-server/internal/adapter/repository"
	"github.com/mikinet/chat-server/internal/infrastructure/config"
	"github.com/mikinet/chat-server/internal/web"
	"github.com/mikinet/chat-server/pkg/logger"
	"github.com/mikinet/chat-server/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const version = "1.0.0"

// App representa a aplicação e suas dependências
type App struct {
	config            *config.Config
	logger            logger.Logger
	router            *gin.Engine
	messageRepository *repository.InMemoryMessageRepository
	messageController *controller.MessageController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config, log logger.Logger) *App {
	gin.SetMode(cfg.GinMode)

	// Repositório em memória, compartilhado por todas as requisições
	var opts []repository.Option
	if cfg.MetricsEnabled {
		opts = append(opts, repository.WithSizeObserver(middleware.RecordStoredMessages))
	}
	messageRepo := repository.NewInMemoryMessageRepository(opts...)

	messageController := controller.NewMessageController(messageRepo, log, cfg.LatestLimit)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{
		config:            cfg,
		logger:            log,
		router:            router,
		messageRepository: messageRepo,
		messageController: messageController,
	}
	app.SetupRoutes()

	return app
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, middleware.HeaderRequestID)
	c.ExposeHeaders = []string{middleware.HeaderRequestID}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins()
	}
	return c
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	a.router.GET("/", web.Index)

	// Health check
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Version: version})
	})

	if a.config.MetricsEnabled {
		a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if a.config.SwaggerEnabled {
		docs.SwaggerInfo.Host = ""
		a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	route.RegisterMessageRoutes(a.router, a.messageController)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start inicia o servidor HTTP e aguarda um sinal de término
func (a *App) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

// Run serve requisições até o contexto ser cancelado e então encerra com elegância
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.config.Addr(),
		Handler:      a.router,
		ReadTimeout:  a.config.ReadTimeout,
		WriteTimeout: a.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor de chat escutando", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return nil
}
