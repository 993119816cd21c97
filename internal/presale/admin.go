package presale

import (
	"errors"

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

	r.Post("/presale/base-token", func(c *fiber.Ctx) error {
		type Req struct {
			Ref string `json:"ref"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)
		if err := cfg.SetBaseToken(caller, body.Ref); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/presale/payment-asset", func(c *fiber.Ctx) error {
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

	r.Post("/presale/rate", func(c *fiber.Ctx) error {
		type Req struct {
			Method int    `json:"method"`
			Rate   string `json:"rate"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)

		m, err := token.ParseMethod(body.Method)
		if err != nil {
			return adminErr(c, err)
		}
		rate, err := token.ParseAmount(body.Rate)
		if err != nil {
			return adminErr(c, err)
		}
		if err := cfg.SetRate(caller, m, rate); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/presale/min", func(c *fiber.Ctx) error {
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
		if err := cfg.SetMinAmount(caller, amount); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/presale/max", func(c *fiber.Ctx) error {
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
		if err := cfg.SetMaxAmount(caller, amount); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/presale/open", func(c *fiber.Ctx) error {
		type Req struct {
			Open bool `json:"open"`
		}
		var body Req
		c.BodyParser(&body)

		caller := c.Locals("account").(string)
		if err := cfg.SetSaleOpen(caller, body.Open); err != nil {
			return adminErr(c, err)
		}
		return c.JSON(fiber.Map{"status": "updated"})
	})

	r.Post("/presale/method", func(c *fiber.Ctx) error {
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
}
