package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const keyPrincipal = "principal"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errInvalidRole  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token claims", http.StatusUnauthorized)
)

// Claims is the bearer token body. Subject carries the user's email.
type Claims struct {
	UserID string `json:"uid,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Principal resolves the caller described by the claims.
func (c Claims) Principal() (entities.Principal, error) {
	role, ok := entities.ParseRole(c.Role)
	if !ok {
		return entities.Principal{}, errors.New("unknown role")
	}
	email := c.Email
	if email == "" {
		email = c.Subject
	}
	id := c.UserID
	if id == "" {
		id = email
	}
	if id == "" {
		return entities.Principal{}, errors.New("token has no subject")
	}
	return entities.Principal{ID: id, Email: email, Role: role, Name: c.Name}, nil
}

// JWTAuth accepts HS256 bearer tokens signed with secret and stores the
// resulting principal on the context.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		p, err := claims.Principal()
		if err != nil {
			c.AbortWithStatusJSON(errInvalidRole.HTTPStatus, errInvalidRole.ToHTTPError())
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetPrincipal stores p on the request context.
func SetPrincipal(c *gin.Context, p entities.Principal) {
	c.Set(keyPrincipal, p)
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(keyPrincipal)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

// IssueToken signs an HS256 token for p. It backs local tooling and tests;
// token issuance for end users lives in the identity service.
func IssueToken(secret string, p entities.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
