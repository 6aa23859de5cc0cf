package controller

import (
	"errors"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"safarsaathi/config"
	"safarsaathi/models"
	"safarsaathi/utils"
)

type LeadController struct {
	Provider config.LeadStoreProvider
	Notify   chan<- models.Lead
	Logger   *log.Logger
}

func NewLeadController(provider config.LeadStoreProvider, notify chan<- models.Lead, logger *log.Logger) *LeadController {
	return &LeadController{
		Provider: provider,
		Notify:   notify,
		Logger:   logger,
	}
}

// CreateLead validates a landing-page submission and persists exactly one
// row. Validation runs before the store handle is even resolved, so a bad
// payload never causes a network call.
func (lc *LeadController) CreateLead(c *fiber.Ctx) error {
	var input models.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if verr := utils.ValidateLead(&input); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"fields":  verr.Fields,
		})
	}

	st, err := lc.Provider.Handle(c.UserContext())
	if err != nil {
		lc.Logger.Printf("Store handle unavailable: %v", err)
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Lead store is unavailable, please try again", err)
	}

	created, err := st.CreateLead(c.UserContext(), input.ToLead())
	if err != nil {
		var perr *models.PersistenceError
		if errors.As(err, &perr) {
			lc.Logger.Printf("Failed to persist lead: %v", perr)
			lc.captureInsertFailure(perr)

			resp := fiber.Map{
				"success": false,
				"error":   "Failed to save your details",
				"message": perr.Message,
			}
			if perr.Code != "" {
				resp["code"] = perr.Code
			}
			if perr.Hint != "" {
				resp["hint"] = perr.Hint
			}
			return c.Status(fiber.StatusBadGateway).JSON(resp)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save your details", err)
	}

	// Hand the lead to the notification worker without blocking the
	// response. A full queue just means no email for this one.
	if lc.Notify != nil {
		select {
		case lc.Notify <- *created:
		default:
			lc.Logger.Printf("Notification queue full, skipping email for lead %s", created.ID)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(created))
}

func (lc *LeadController) captureInsertFailure(perr *models.PersistenceError) {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "lead_controller")
		if perr.Code != "" {
			scope.SetTag("store_code", perr.Code)
		}
		sentry.CaptureException(perr)
	})
}
