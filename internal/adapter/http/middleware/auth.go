package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"invite_studio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	userIDKey = "auth_user_id"
	adminKey  = "auth_admin"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in and retry", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Your session has expired, sign in again", http.StatusUnauthorized)
	errAuthDisabled = pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Sign-in is not available right now", http.StatusServiceUnavailable)
	errNotAdmin     = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to do this", http.StatusForbidden)
)

// Claims is the bearer token payload. The subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Auth validates an HS256 bearer token and stores its subject as the user id.
// Requests are rejected here, before any handler runs.
func Auth(secret string, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	key := []byte(strings.TrimSpace(secret))
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		if len(key) == 0 {
			log.Error("[auth][middleware] jwt secret not configured")
			c.AbortWithStatusJSON(errAuthDisabled.HTTPStatus, errAuthDisabled.ToHTTPError())
			return
		}

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err == nil && strings.TrimSpace(claims.Subject) == "" {
			err = errors.New("token has no subject")
		}
		if err != nil {
			log.Warn("[auth][middleware] token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(adminKey, claims.Admin)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin claim. It must
// run after Auth.
func RequireAdmin(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			log.Warn("[auth][middleware] admin route refused", zap.String("path", c.Request.URL.Path), zap.String("user_id", UserID(c)))
			c.AbortWithStatusJSON(errNotAdmin.HTTPStatus, errNotAdmin.ToHTTPError())
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(adminKey)
}

// SetUserID marks the request as authenticated as userID.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

// SignToken issues an HS256 token for subject valid for ttl.
func SignToken(secret, subject string, ttl time.Duration) (string, error) {
	return signClaims(secret, subject, false, ttl)
}

// SignAdminToken is SignToken with the admin claim set.
func SignAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	return signClaims(secret, subject, true, ttl)
}

func signClaims(secret, subject string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{Admin: admin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
