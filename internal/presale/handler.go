package presale

import (
	"github.com/gofiber/fiber/v2"

	"px-platform/internal/token"
)

func RegisterRoutes(r fiber.Router, s *Service) {

	r.Get("/presale/config", func(c *fiber.Ctx) error {
		return c.JSON(s.Config().View())
	})

	r.Get("/presale/quote", func(c *fiber.Ctx) error {
		amount, err := token.ParseAmount(c.Query("amount"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		cost, err := s.Quote(amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"payment_amount": cost.String()})
	})

	r.Get("/presale/quote/usdt", func(c *fiber.Ctx) error {
		amount, err := token.ParseAmount(c.Query("amount"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		cost, err := s.QuoteUSDT(amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"payment_amount": cost.String()})
	})

	r.Get("/presale/quote/native", func(c *fiber.Ctx) error {
		amount, err := token.ParseAmount(c.Query("amount"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"payment_amount": s.QuoteNative(amount).String()})
	})

	r.Post("/presale/purchase", func(c *fiber.Ctx) error {
		type Req struct {
			Amount string `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		buyer := c.Locals("account").(string)

		amount, err := token.ParseAmount(body.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		rec, err := s.PurchaseWithUSDT(buyer, amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})

	r.Post("/presale/purchase/native", func(c *fiber.Ctx) error {
		type Req struct {
			Amount string `json:"amount"`
			Value  string `json:"value"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		buyer := c.Locals("account").(string)

		amount, err := token.ParseAmount(body.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		value, err := token.ParseAmount(body.Value)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		rec, err := s.PurchaseWithNative(buyer, amount, value)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})
}
