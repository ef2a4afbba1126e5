package middleware

import (
	"github.com/gin-gonic/gin"
)

// contentSecurityPolicy allows the embedded assets and data URL pictures only
const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; script-src 'self'; " +
	"style-src 'self'; form-action 'self'; frame-ancestors 'none'"

// SecurityHeadersMiddleware adds security headers to all HTTP responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// X-Frame-Options: Prevents clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// X-Content-Type-Options: Prevents MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		c.Header("Content-Security-Policy", contentSecurityPolicy)

		// Referrer-Policy: Controls referrer information
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Permissions-Policy: Restricts browser features
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), interest-cohort=()")

		// Pages echo submitted passwords back, so nothing is cached
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
		c.Header("Pragma", "no-cache")

		c.Next()
	}
}
