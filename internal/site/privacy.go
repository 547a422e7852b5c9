package site

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Paths that are never logged.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable for one salt, so repeat visits can be correlated in the
// log without recording the address itself.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// accessLog replaces gin's default logger, which prints raw client
// addresses. Requests carrying DNT: 1 are not logged.
func accessLog(salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Printf("%s %s %d %v visitor=%s", c.Request.Method, path, c.Writer.Status(),
			time.Since(start).Round(time.Microsecond), hashIP(c.ClientIP(), salt))
	}
}
