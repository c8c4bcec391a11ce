package handler

import (
	"quiz-brain/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const (
	statusConfigured = "configured"
	statusMissing    = "missing"
)

// HealthHandler reports liveness and which collaborators are available
type HealthHandler struct {
	storeConfigured bool
	modelConfigured bool
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(storeConfigured, modelConfigured bool) *HealthHandler {
	return &HealthHandler{storeConfigured: storeConfigured, modelConfigured: modelConfigured}
}

// Root godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "quiz-brain is running"
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("quiz-brain is running")
}

// Health godoc
// @Summary Collaborator status
// @Description Reports whether the question store and the model were configured at startup
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "ok"
	if !h.storeConfigured || !h.modelConfigured {
		status = "degraded"
	}
	return c.JSON(dto.HealthResponse{
		Status: status,
		Store:  configured(h.storeConfigured),
		Model:  configured(h.modelConfigured),
	})
}

func configured(ok bool) string {
	if ok {
		return statusConfigured
	}
	return statusMissing
}
