package handler

import (
	"btc-pulse/internal/dashboard"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer trace.Tracer
	state  *dashboard.State
}

func New(tracer trace.Tracer, state *dashboard.State) *Handler {
	return &Handler{
		tracer: tracer,
		state:  state,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/dashboard", h.GetDashboard)
}
