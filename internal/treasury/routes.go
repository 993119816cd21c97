package treasury

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/treasury/withdraw/asset", func(c *fiber.Ctx) error {
		type Req struct {
			Ref string `json:"ref"`
		}
		var r Req
		c.BodyParser(&r)

		caller := c.Locals("account").(string)

		rec, err := service.WithdrawToken(caller, r.Ref)
		if err != nil {
			status := 400
			if errors.Is(err, ErrNotAdmin) {
				status = 403
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})

	app.Post("/treasury/withdraw/native", func(c *fiber.Ctx) error {
		caller := c.Locals("account").(string)

		rec, err := service.WithdrawNative(caller)
		if err != nil {
			status := 400
			if errors.Is(err, ErrNotAdmin) {
				status = 403
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})
}
