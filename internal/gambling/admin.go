package gambling

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"px-platform/internal/token"
)

func adminErr(c *fiber.Ctx, err error) error {
	status := 400
	if errors.Is(err, ErrNotAdmin) {
		status = 403
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func RegisterAdminRoutes(r fiber.Router, cfg *Config) {

	r.Post("/gambling/payment-asset", func(c *fiber.Ctx) error {
		type Req struct {
			Ref string `json:"ref"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)
		if err := cfg.SetPaymentAsset(caller, body.Ref); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/gambling/open", func(c *fiber.Ctx) error {
		type Req struct {
			Open bool `json:"open"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)
		if err := cfg.SetOpen(caller, body.Open); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/gambling/method", func(c *fiber.Ctx) error {
		type Req struct {
			Method int `json:"method"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)

		m, err := token.ParseMethod(body.Method)
		if err != nil {
			return adminErr(c, err)
		}
		if err := cfg.SetMethod(caller, m); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/gambling/amount", func(c *fiber.Ctx) error {
		type Req struct {
			Amount string `json:"amount"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)

		amount, err := token.ParseAmount(body.Amount)
		if err != nil {
			return adminErr(c, err)
		}
		if err := cfg.SetGameAmount(caller, amount); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/gambling/random-bound", func(c *fiber.Ctx) error {
		type Req struct {
			Bound string `json:"bound"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)

		bound, err := strconv.ParseUint(body.Bound, 10, 64)
		if err != nil {
			return adminErr(c, err)
		}
		if err := cfg.SetRandomBound(caller, bound); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})
}
