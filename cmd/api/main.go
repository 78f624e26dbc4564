package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mikinet/chat-server/internal/infrastructure/config"
	"github.com/mikinet/chat-server/pkg/logger"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	// Criar aplicação
	app := NewApp(cfg, appLogger)

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		appLogger.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
