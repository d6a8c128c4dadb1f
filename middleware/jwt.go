package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/storefronthq/storefront/backend/models"
)

func setContextParameters(c *gin.Context, user *models.User) error {
	if user.Status != models.UserActive {
		slog.Warn("rejecting inactive user", "userId", user.ID, "status", user.Status)
		return fmt.Errorf("user is not active")
	}
	c.Set(USER_ID_KEY, user.ID)
	c.Set(USER_ROLE_KEY, string(user.Role))
	return nil
}

func userFromTokenClaims(token *jwt.Token) (*models.User, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		slog.Warn("token claims are invalid")
		return nil, fmt.Errorf("token is invalid")
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		slog.Warn("token subject is missing")
		return nil, fmt.Errorf("token is invalid")
	}

	user, err := models.DB.GetUserByEmail(email)
	if err != nil {
		slog.Error("error while fetching user", "error", err)
		return nil, err
	}
	if user == nil {
		slog.Warn("no user found for token subject")
		return nil, fmt.Errorf("token is invalid")
	}
	return user, nil
}

// BearerTokenAuth authenticates either an opaque database token
// (values carry a "t:" prefix) or a signed JWT, resolves the user
// behind it and sets the actor keys on the request context.
func BearerTokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.String(http.StatusForbidden, "No Authorization header provided")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.String(http.StatusForbidden, "Could not find bearer token in Authorization header")
			c.Abort()
			return
		}

		if strings.HasPrefix(token, "t:") {
			dbToken, err := models.DB.GetToken(token)
			if err != nil {
				slog.Error("error while fetching token from database", "error", err)
				c.String(http.StatusInternalServerError, "Error occurred while fetching database")
				c.Abort()
				return
			}
			if dbToken == nil || dbToken.User == nil {
				c.String(http.StatusForbidden, "Invalid bearer token")
				c.Abort()
				return
			}
			if err := setContextParameters(c, dbToken.User); err != nil {
				c.String(http.StatusForbidden, "User is not active")
				c.Abort()
				return
			}
		} else {
			jwtSecret := os.Getenv("JWT_SECRET")
			if jwtSecret == "" {
				slog.Error("no JWT_SECRET environment variable provided")
				c.String(http.StatusInternalServerError, "Error occurred while reading signing key")
				c.Abort()
				return
			}

			parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !parsedToken.Valid {
				slog.Warn("can't parse token", "error", err)
				c.String(http.StatusForbidden, "Authorization header is invalid")
				c.Abort()
				return
			}

			user, err := userFromTokenClaims(parsedToken)
			if err != nil {
				c.String(http.StatusForbidden, "Failed to parse token")
				c.Abort()
				return
			}
			if err := setContextParameters(c, user); err != nil {
				c.String(http.StatusForbidden, "User is not active")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// RequireElevated gates routes that only elevated roles may reach,
// before any handler logic runs.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok || !actor.Role.Elevated() {
			c.String(http.StatusForbidden, "Not allowed to access this resource with this role")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
