package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(RequestLogger(log))
	app.Use(CORS("https://forms.example.org"))
	return app
}

func TestCORSOnEveryResponse(t *testing.T) {
	app := newTestApp(zap.NewNop())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("disk full") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "https://forms.example.org", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Internal Server Error", string(body))
}

func TestCORSPreflightSkipsHandlers(t *testing.T) {
	app := newTestApp(zap.NewNop())
	called := false
	app.Options("/log-event", func(c *fiber.Ctx) error {
		called = true
		return c.SendString("should not run")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/log-event", nil), -1)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	assert.False(t, called)
}

func TestExportToken(t *testing.T) {
	denied := 0
	app := newTestApp(zap.NewNop())
	app.Get("/export", ExportToken("tok", func() { denied++ }), func(c *fiber.Ctx) error {
		return c.SendString("data")
	})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Authorization", "Bearer nope")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", string(body))
	assert.Equal(t, 1, denied)
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newTestApp(zap.New(core))
	app.Post("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/bad", func(c *fiber.Ctx) error { return c.Status(fiber.StatusBadRequest).SendString("Invalid event") })
	app.Post("/fail", func(c *fiber.Ctx) error { return errors.New("redis down") })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		_, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
		require.NoError(t, err)
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, int64(500), entries[2].ContextMap()["status"])
}
