package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mikinet/chat-server/internal/adapter/api/dto"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// Config define as variáveis de ambiente do cliente
type Config struct {
	ServerURL string        `env:"CHAT_SERVER_URL,default=http://localhost:3000"`
	Timeout   time.Duration `env:"CHAT_TIMEOUT,default=5s"`
	Colours   bool          `env:"CHAT_COLOURS,default=true"`
}

const usage = `uso: chatctl <comando> [argumentos]

comandos:
  list                 lista todas as mensagens
  latest               lista as mensagens mais recentes
  get <id>             mostra uma mensagem
  search <texto>       busca mensagens pelo texto
  send <nome> <texto>  publica uma mensagem
  delete <id>          remove a mensagem e todas as posteriores
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		fmt.Fprintf(stderr, "erro de configuração: %v\n", err)
		return exitUsage
	}
	color.Enable = cfg.Colours

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client := NewClient(cfg.ServerURL, nil)

	code, err := execute(ctx, client, args, stdout)
	if err != nil {
		fmt.Fprintln(stderr, color.Red.Render(err.Error()))
	}
	return code
}

func execute(ctx context.Context, client *Client, args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return exitUsage, nil
	}

	var (
		messages []dto.MessageResponse
		err      error
	)

	switch cmd := args[0]; {
	case cmd == "list" && len(args) == 1:
		messages, err = client.List(ctx)
	case cmd == "latest" && len(args) == 1:
		messages, err = client.Latest(ctx)
	case cmd == "search" && len(args) == 2:
		messages, err = client.Search(ctx, args[1])
	case cmd == "get" && len(args) == 2:
		var m dto.MessageResponse
		m, err = client.Get(ctx, args[1])
		messages = []dto.MessageResponse{m}
	case cmd == "send" && len(args) == 3:
		messages, err = client.Send(ctx, args[1], args[2])
	case cmd == "delete" && len(args) == 2:
		if err = client.Delete(ctx, args[1]); err == nil {
			fmt.Fprintln(out, color.Green.Render("mensagem "+args[1]+" removida"))
			return exitOK, nil
		}
	default:
		fmt.Fprint(out, usage)
		return exitUsage, nil
	}

	if err != nil {
		var failure *ValidationFailure
		if errors.As(err, &failure) {
			return exitRuntime, fmt.Errorf("mensagem rejeitada: %w", failure)
		}
		return exitRuntime, err
	}

	renderMessages(out, messages)
	return exitOK, nil
}

func renderMessages(out io.Writer, messages []dto.MessageResponse) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "From", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, m := range messages {
		table.Append([]string{strconv.Itoa(m.ID), m.From, m.Text})
	}
	table.Render()
}
