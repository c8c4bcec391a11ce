package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsHandledStatus(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(http.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(Middleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	okBefore := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ok", "200"))
	failBefore := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/fail", "418"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/fail", "418")))
}

func TestHandler_ExposesCounters(t *testing.T) {
	QuestionsDropped.Add(0)

	app := fiber.New()
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "quizbrain_questions_dropped_total"))
}
