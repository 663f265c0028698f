package handlers

import (
	"net/http"

	"rental_backend/internal/adapter/http/middleware"
	"rental_backend/internal/domain/entities"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// principal is the authenticated caller. Use cases reject the zero value.
func principal(c *gin.Context) entities.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

func invalidPayload(c *gin.Context, appErr *pkg.AppError, err error) {
	out := *appErr
	if err != nil {
		out.Details = []string{err.Error()}
	}
	c.JSON(out.HTTPStatus, out.ToHTTPError())
}
