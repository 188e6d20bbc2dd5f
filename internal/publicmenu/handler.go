package publicmenu

import (
	"net/http"

	"github.com/RiniPat/aaDinehub/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// GET /menu/:slug?table=<label>
func (h *Handler) Show(c *gin.Context) {
	view, err := h.resolver.Resolve(c.Param("slug"), c.Query("table"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
