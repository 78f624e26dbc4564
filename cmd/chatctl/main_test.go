package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/mikinet/chat-server/internal/adapter/api/controller"
	"github.com/mikinet/chat-server/internal/adapter/api/route"
	"github.com/mikinet/chat-server/internal/adapter/repository"
	"github.com/mikinet/chat-server/internal/domain/message"
	"github.com/mikinet/chat-server/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	color.Enable = false

	r := gin.New()
	repo := repository.NewInMemoryMessageRepository()
	route.RegisterMessageRoutes(r, controller.NewMessageController(repo, logger.NewNop(), message.DefaultLatestLimit))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client())
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestServer(t)

	all, err := client.Send(ctx, "Alice", "hello world")
	require.NoError(t, err)
	require.Len(t, all, 2)

	m, err := client.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", m.From)

	found, err := client.Search(ctx, "HELLO")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = client.Search(ctx, "")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = client.Send(ctx, "", "")
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Len(t, failure.Errors, 2)

	require.NoError(t, client.Delete(ctx, "1"))
	_, err = client.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, client.Delete(ctx, "1"), ErrNotFound)
}

func TestExecuteRendersTable(t *testing.T) {
	ctx := context.Background()
	client := newTestServer(t)

	var out bytes.Buffer
	code, err := execute(ctx, client, []string{"list"}, &out)
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out.String(), "Bart")
	assert.Contains(t, out.String(), "Welcome to CYF chat system!")

	out.Reset()
	code, err = execute(ctx, client, []string{"send", "", "hi"}, &out)
	assert.Equal(t, exitRuntime, code)
	require.Error(t, err)
	assert.Contains(t, err.Error(), message.MsgMissingName)

	out.Reset()
	code, err = execute(ctx, client, []string{"delete", "0"}, &out)
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out.String(), "removida")
}

func TestExecuteUsage(t *testing.T) {
	client := NewClient("http://unused", nil)

	for _, args := range [][]string{nil, {"unknown"}, {"get"}, {"send", "only-name"}} {
		var out bytes.Buffer
		code, err := execute(context.Background(), client, args, &out)
		require.NoError(t, err)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, out.String(), "uso: chatctl")
	}
}
