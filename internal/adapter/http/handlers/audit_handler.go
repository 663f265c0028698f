package handlers

import (
	"net/http"
	"strings"

	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// List returns audit entries, newest first, filtered by entity_type and
// entity_id when given. Admin only.
func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.usecase.List(
		c.Request.Context(),
		principal(c),
		strings.TrimSpace(c.Query("entity_type")),
		strings.TrimSpace(c.Query("entity_id")),
	)
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(entries))
}
