package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/VenturaVini/barbearia/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextIsBarber = "isBarber"
	ContextIsStaff  = "isStaff"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		isBarber, _ := claims["isBarber"].(bool)
		isStaff, _ := claims["isStaff"].(bool)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextIsBarber, isBarber)
		c.Set(ContextIsStaff, isStaff)

		c.Next()
	}
}

// BarberOnly exige a capacidade de barbeiro no token.
func BarberOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isBarber, _ := c.Get(ContextIsBarber); isBarber != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "barber_only"})
			return
		}
		c.Next()
	}
}

// StaffOnly exige o flag de staff no token.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isStaff, _ := c.Get(ContextIsStaff); isStaff != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}
		c.Next()
	}
}
