// Package auth gates the admin surface behind a session flag backed by a
// single configured credential pair.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hnthao/foodorder/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKeyLoggedIn = "admin_logged_in"
	sessionKeyUsername = "admin_username"
)

type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func CredentialsFromConfig(cfg config.Admin) Credentials {
	return Credentials{
		Username:     cfg.Username,
		Password:     cfg.Password,
		PasswordHash: cfg.PasswordHash,
	}
}

// Verify checks a submitted pair against the configured credentials.
// A bcrypt hash takes precedence over the plaintext fallback.
func (c Credentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

func SignIn(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyLoggedIn, true)
	session.Set(sessionKeyUsername, username)
	return session.Save()
}

func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

func Username(c *gin.Context) string {
	if v, ok := sessions.Default(c).Get(sessionKeyUsername).(string); ok {
		return v
	}
	return ""
}

// RequireAdmin aborts with 401 unless the session carries the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if loggedIn, ok := session.Get(sessionKeyLoggedIn).(bool); !ok || !loggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "login required",
			})
			return
		}
		c.Next()
	}
}
