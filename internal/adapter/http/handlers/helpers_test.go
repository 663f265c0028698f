package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"

	"rental_backend/internal/adapter/http/middleware"
	"rental_backend/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	salesUser     = entities.Principal{ID: "u-sales", Email: "sales@example.com", Role: entities.RoleSales}
	adminUser     = entities.Principal{ID: "u-admin", Email: "admin@example.com", Role: entities.RoleAdmin}
	financeUser   = entities.Principal{ID: "u-fin", Email: "finance@example.com", Role: entities.RoleFinance}
	warehouseUser = entities.Principal{ID: "u-wh", Email: "warehouse@example.com", Role: entities.RoleWarehouse}
)

// newRouter returns an engine whose requests are authenticated as p.
func newRouter(p entities.Principal) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	})
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
