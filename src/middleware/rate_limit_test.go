package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBlocksUntilWindowResets(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	app := fiber.New()
	app.Post("/login", NewRateLimiter(client).Limit("auth", 2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	send := func() *http.Response {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		return resp
	}

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, send().StatusCode)
	}

	for i := 0; i < 2; i++ {
		resp := send()
		require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body struct {
			Message    string `json:"message"`
			RetryAfter int    `json:"retryAfter"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Too many requests", body.Message)
		assert.Equal(t, 60, body.RetryAfter)
	}

	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, send().StatusCode)
}

func TestRateLimiterPassesThroughWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	app := fiber.New()
	app.Get("/limited", NewRateLimiter(client).Limit("auth", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
