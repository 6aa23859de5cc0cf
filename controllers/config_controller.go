package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"safarsaathi/config"
	"safarsaathi/utils"
)

// ConfigController serves the store credentials the landing page needs to
// build its own client. The shape matches the credential sources:
// {"supabaseUrl": ..., "supabaseAnonKey": ...}.
type ConfigController struct {
	Source config.CredentialSource
	Logger *log.Logger
}

func NewConfigController(source config.CredentialSource, logger *log.Logger) *ConfigController {
	return &ConfigController{
		Source: source,
		Logger: logger,
	}
}

func (cc *ConfigController) GetConfig(c *fiber.Ctx) error {
	creds, err := cc.Source.Credentials(c.UserContext())
	if err != nil {
		cc.Logger.Printf("Failed to resolve store credentials: %v", err)
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Configuration is unavailable", err)
	}
	return c.JSON(creds)
}
