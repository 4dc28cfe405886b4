package middleware

import (
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

const metaKey = "requestMeta"

// RequestMeta captures the caller's IP address and user agent for audit
// attribution. The values come from the gateway as-is; the ledger records
// them without further checks.
func RequestMeta() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(metaKey, services.Meta{
			IPAddress: c.IP(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		})
		return c.Next()
	}
}

// MetaFromCtx returns the audit attribution captured by RequestMeta.
func MetaFromCtx(c *fiber.Ctx) services.Meta {
	if m, ok := c.Locals(metaKey).(services.Meta); ok {
		return m
	}
	return services.Meta{}
}
