package handler

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/pkg/serverutils"
	internalWS "deal-insights-be/internal/websocket"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type knownSessions map[string]bool

func (k knownSessions) Exists(id string) bool { return k[id] }

var (
	watchedId = strings.Repeat("a", 36)
	otherId   = strings.Repeat("b", 36)
)

func newStreamApp(t *testing.T) (*fiber.App, *internalWS.Hub) {
	t.Helper()

	hub := internalWS.NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewSessionStreamHandler(knownSessions{watchedId: true, otherId: true}, hub, logger.NewNopLogger()).RegisterRoutes(api)
	api.Get("/sessions/:id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Params("id")})
	})
	return app, hub
}

func listen(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return ln.Addr().String()
}

func TestSessionStreamHandler_UnknownSession(t *testing.T) {
	app, _ := newStreamApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions/missing/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionStreamHandler_RequiresUpgrade(t *testing.T) {
	app, _ := newStreamApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions/"+watchedId+"/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestSessionStreamHandler_DeliversAfterOtherTraffic(t *testing.T) {
	app, hub := newStreamApp(t)
	addr := listen(t, app)

	conn, _, err := fastws.DefaultDialer.Dial(fmt.Sprintf("ws://%s/api/sessions/%s/ws", addr, watchedId), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Listeners(watchedId) == 1 }, 2*time.Second, 10*time.Millisecond)

	// unrelated requests recycle the server's request buffers
	for i := 0; i < 200; i++ {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/sessions/%s", addr, otherId))
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	require.Equal(t, 1, hub.Listeners(watchedId))
	assert.Equal(t, 0, hub.Listeners(otherId))

	hub.SendToSession(context.Background(), watchedId, []byte(`{"type":"panel_state"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, fastws.TextMessage, kind)
	assert.JSONEq(t, `{"type":"panel_state"}`, string(data))
}
