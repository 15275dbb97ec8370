package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "visitor_id"
	VisitorKey    = "visitor_id"

	visitorCookieMaxAge = 365 * 24 * time.Hour
)

// Visitor assigns an anonymous visitor id cookie. It only identifies a
// browser so compose state can follow it between requests; it is not an
// authentication mechanism.
func Visitor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(VisitorCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Expires:  time.Now().Add(visitorCookieMaxAge),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(VisitorKey, id)
		return c.Next()
	}
}

// GetVisitorID returns the visitor id set by the Visitor middleware.
func GetVisitorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(VisitorKey).(string); ok {
		return id
	}
	return ""
}
