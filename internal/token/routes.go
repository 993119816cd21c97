package token

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router) {

	app.Post("/token/approve", func(c *fiber.Ctx) error {
		type Req struct {
			Asset   string `json:"asset"`
			Spender string `json:"spender"`
			Amount  string `json:"amount"`
		}
		var r Req
		c.BodyParser(&r)

		owner := c.Locals("account").(string)

		led := Get(r.Asset)
		if led == nil {
			return c.Status(404).JSON(fiber.Map{"error": ErrUnknownLedger.Error()})
		}
		tok, ok := led.(*Token)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "asset has no allowance surface"})
		}

		amount, err := ParseAmount(r.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		tok.Approve(owner, r.Spender, amount)
		return c.JSON(fiber.Map{"status": "approved"})
	})

	app.Get("/token/balance/:asset/:account", func(c *fiber.Ctx) error {
		led := Get(c.Params("asset"))
		if led == nil {
			return c.Status(404).JSON(fiber.Map{"error": ErrUnknownLedger.Error()})
		}
		b := led.BalanceOf(c.Params("account"))
		return c.JSON(fiber.Map{
			"balance": b.String(),
			"display": Display(b, led.Decimals()),
		})
	})
}

func RegisterAdminRoutes(app fiber.Router, native *Native) {

	app.Post("/token/mint", func(c *fiber.Ctx) error {
		type Req struct {
			Asset   string `json:"asset"`
			Account string `json:"account"`
			Amount  string `json:"amount"`
		}
		var r Req
		c.BodyParser(&r)

		amount, err := ParseAmount(r.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		if r.Asset == "native" {
			native.Mint(r.Account, amount)
			return c.JSON(fiber.Map{"status": "minted"})
		}

		led := Get(r.Asset)
		tok, ok := led.(*Token)
		if led == nil || !ok {
			return c.Status(404).JSON(fiber.Map{"error": ErrUnknownLedger.Error()})
		}

		tok.Mint(r.Account, amount)
		return c.JSON(fiber.Map{"status": "minted"})
	})
}
