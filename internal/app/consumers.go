package app

import (
	"go.uber.org/zap"

	"px-platform/internal/audit"
	"px-platform/internal/cache"
	"px-platform/internal/event"
	"px-platform/internal/gambling"
	"px-platform/internal/logger"
	"px-platform/internal/monitoring"
	"px-platform/internal/presale"
	"px-platform/internal/treasury"
	"px-platform/internal/ws"
)

func registerConsumers(bus *event.Bus, auditService *audit.Service, hub *ws.Hub, saleConfig *presale.Config) {

	bus.Subscribe(event.EventTokenPurchased, func(payload interface{}) {
		rec := payload.(*presale.Purchase)

		logger.Log.Info("presale purchase",
			zap.String("buyer", rec.Buyer),
			zap.String("amount_out", rec.AmountOut),
			zap.String("amount_in", rec.AmountIn),
		)

		auditService.Log(rec.Buyer, "presale_purchase", rec.AmountOut)
		monitoring.PurchasesTotal.WithLabelValues(rec.Method).Inc()
		cache.Set("presale:total_sold", saleConfig.TotalSold().String())

		hub.BroadcastJSON(rec)
	})

	bus.Subscribe(event.EventWagerSettled, func(payload interface{}) {
		rec := payload.(*gambling.Result)

		outcome := "loss"
		if rec.WinStatus {
			outcome = "win"
		}

		logger.Log.Info("wager settled",
			zap.String("player", rec.Player),
			zap.Bool("win", rec.WinStatus),
			zap.String("payout", rec.Payout),
		)

		auditService.Log(rec.Player, "wager_settled", outcome)
		monitoring.WagersTotal.WithLabelValues(outcome).Inc()
		cache.Set("gambling:last_outcome", outcome)

		hub.BroadcastJSON(rec)
	})

	bus.Subscribe(event.EventTreasurySwept, func(payload interface{}) {
		rec := payload.(*treasury.Withdrawal)

		logger.Log.Info("treasury withdrawal",
			zap.String("asset", rec.Asset),
			zap.String("amount", rec.Amount),
		)

		auditService.Log(rec.To, "treasury_withdraw", rec.Asset)
		monitoring.WithdrawalsTotal.WithLabelValues(rec.Asset).Inc()

		hub.BroadcastJSON(rec)
	})
}
