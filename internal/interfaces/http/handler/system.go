package handler

import (
	"github.com/gin-gonic/gin"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	dbPing func() error
}

// NewSystemHandler creates a new SystemHandler. dbPing may be nil when
// no database check is wanted.
func NewSystemHandler(dbPing func() error) *SystemHandler {
	return &SystemHandler{dbPing: dbPing}
}

// RegisterPublicRoutes registers the unversioned operational routes
func (h *SystemHandler) RegisterPublicRoutes(engine *gin.Engine) {
	engine.GET("/healthz", h.Health)
}

// Health handles GET /healthz
func (h *SystemHandler) Health(c *gin.Context) {
	if h.dbPing != nil {
		if err := h.dbPing(); err != nil {
			h.InternalError(c, "database unavailable")
			return
		}
	}
	h.Success(c, gin.H{"status": "ok"})
}
