package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// HeaderName is the header carrying the API key.
const HeaderName = "X-API-Key"

// Config configures the API key middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware that rejects requests without a valid API key.
// The key is read from the X-API-Key header, falling back to a Bearer token.
func New(cfg Config) fiber.Handler {
	skip := func(*fiber.Ctx) bool { return cfg.ApiKey == "" }
	validate := func(_ *fiber.Ctx, key string) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) == 1, nil
	}

	bearer := keyauth.New(keyauth.Config{
		Next:         skip,
		Validator:    validate,
		ErrorHandler: unauthorized,
	})

	return keyauth.New(keyauth.Config{
		Next:      skip,
		KeyLookup: "header:" + HeaderName,
		Validator: validate,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, keyauth.ErrMissingOrMalformedAPIKey) {
				return bearer(c)
			}
			return unauthorized(c, err)
		},
	})
}

func unauthorized(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "invalid or missing API key",
	})
}
