package gambling

import (
	"github.com/gofiber/fiber/v2"

	"px-platform/internal/token"
)

func RegisterRoutes(r fiber.Router, s *Service) {

	r.Get("/gambling/config", func(c *fiber.Ctx) error {
		return c.JSON(s.Config().View())
	})

	r.Post("/gambling/wager", func(c *fiber.Ctx) error {
		player := c.Locals("account").(string)

		rec, err := s.WagerWithUSDT(player)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})

	r.Post("/gambling/wager/native", func(c *fiber.Ctx) error {
		type Req struct {
			Value string `json:"value"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		player := c.Locals("account").(string)

		value, err := token.ParseAmount(body.Value)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		rec, err := s.WagerWithNative(player, value)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rec)
	})
}
