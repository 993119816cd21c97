package presale

import (
	"math/big"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"px-platform/internal/db"
	"px-platform/internal/event"
	"px-platform/internal/ledger"
	"px-platform/internal/token"
	"px-platform/internal/treasury"
)

const (
	testAdmin = "admin"
	testVault = "vault"
)

func newTestService(t *testing.T) (*Service, *token.Token, *token.Token, *token.Native) {
	t.Helper()

	database := db.Init(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { database.Close() })

	usdt := token.NewToken("USDT", 6)
	base := token.NewToken("PXT", 18)
	token.Register("usdt", usdt)
	token.Register("base", base)

	cfg := NewConfig(testAdmin)
	require.NoError(t, cfg.SetBaseToken(testAdmin, "base"))
	require.NoError(t, cfg.SetPaymentAsset(testAdmin, "usdt"))

	native := token.NewNative()
	svc := New(cfg, native, testVault, new(sync.Mutex), database, ledger.New(database), event.NewBus())
	return svc, usdt, base, native
}

func TestSetterAuthorization(t *testing.T) {
	cfg := NewConfig(testAdmin)

	require.ErrorIs(t, cfg.SetSaleOpen("mallory", true), ErrNotAdmin)
	require.ErrorIs(t, cfg.SetRate("mallory", token.MethodUSDT, amt("1")), ErrNotAdmin)
	require.ErrorIs(t, cfg.SetMinAmount("mallory", amt("1")), ErrNotAdmin)
	require.ErrorIs(t, cfg.SetBaseToken("mallory", "x"), ErrNotAdmin)

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.True(t, cfg.View().SaleOpen)
}

func TestNoCrossFieldValidation(t *testing.T) {
	cfg := NewConfig(testAdmin)

	// min above max is an operator error the machine accepts as-is.
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("10")))
	require.Equal(t, "1000", cfg.View().MinAmount)
	require.Equal(t, "10", cfg.View().MaxAmount)
}

func TestPurchaseGateOrder(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	cfg := svc.Config()

	buyer := "buyer-1"

	// Sale closed fails before anything else.
	_, err := svc.PurchaseWithUSDT(buyer, amt("1000000000000000000000"))
	require.ErrorIs(t, err, ErrSaleClosed)

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodNative))

	// Accepted method is native; paying with USDT is rejected.
	_, err = svc.PurchaseWithUSDT(buyer, amt("1000000000000000000000"))
	require.ErrorIs(t, err, ErrWrongMethod)

	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodUSDT))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	_, err = svc.PurchaseWithUSDT(buyer, amt("100000000000000000000"))
	require.ErrorIs(t, err, ErrBelowMinimum)

	_, err = svc.PurchaseWithUSDT(buyer, amt("200000000000000000000000"))
	require.ErrorIs(t, err, ErrAboveMaximum)

	// In range, but the vault holds no supply yet.
	_, err = svc.PurchaseWithUSDT(buyer, amt("2000000000000000000000"))
	require.ErrorIs(t, err, ErrInsufficientSupply)

	require.Equal(t, "0", cfg.TotalSold().String())
}

func TestPurchaseWithUSDT(t *testing.T) {
	svc, usdt, base, _ := newTestService(t)
	cfg := svc.Config()

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodUSDT))
	require.NoError(t, cfg.SetRate(testAdmin, token.MethodUSDT, amt("200000000000000000")))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	base.Mint(testVault, amt("10000000000000000000000000"))
	usdt.Mint("buyer-1", amt("100000000000"))

	// Pre-computed quote matches the purchase cost.
	quote, err := svc.QuoteUSDT(amt("2000000000000000000000"))
	require.NoError(t, err)
	require.Equal(t, "400000000", quote.String())

	// No allowance yet: nothing moves.
	_, err = svc.PurchaseWithUSDT("buyer-1", amt("2000000000000000000000"))
	require.ErrorIs(t, err, token.ErrInsufficientAllowance)
	require.Equal(t, "100000000000", usdt.BalanceOf("buyer-1").String())
	require.Equal(t, "0", base.BalanceOf("buyer-1").String())

	usdt.Approve("buyer-1", testVault, amt("400000000"))

	rec, err := svc.PurchaseWithUSDT("buyer-1", amt("2000000000000000000000"))
	require.NoError(t, err)
	require.Equal(t, "2000000000000000000000", rec.AmountOut)
	require.Equal(t, "400000000", rec.AmountIn)

	require.Equal(t, "2000000000000000000000", base.BalanceOf("buyer-1").String())
	require.Equal(t, "99600000000", usdt.BalanceOf("buyer-1").String())
	require.Equal(t, "400000000", usdt.BalanceOf(testVault).String())
	require.Equal(t, "9998000000000000000000000", base.BalanceOf(testVault).String())
	require.Equal(t, "2000000000000000000000", cfg.TotalSold().String())
}

func TestPurchaseWithNative(t *testing.T) {
	svc, _, base, native := newTestService(t)
	cfg := svc.Config()

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodNative))
	require.NoError(t, cfg.SetRate(testAdmin, token.MethodNative, amt("1000000000000000")))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	base.Mint(testVault, amt("10000000000000000000000000"))
	native.Mint("buyer-2", amt("3000000000000000000"))

	require.Equal(t, "2000000000000000000", svc.QuoteNative(amt("2000000000000000000000")).String())

	// Underpayment is rejected before funds move.
	_, err := svc.PurchaseWithNative("buyer-2", amt("2000000000000000000000"), amt("1000000000000000000"))
	require.ErrorIs(t, err, ErrInsufficientPayment)
	require.Equal(t, "3000000000000000000", native.BalanceOf("buyer-2").String())

	rec, err := svc.PurchaseWithNative("buyer-2", amt("2000000000000000000000"), amt("2000000000000000000"))
	require.NoError(t, err)
	require.Equal(t, "2000000000000000000", rec.AmountIn)

	require.Equal(t, "2000000000000000000000", base.BalanceOf("buyer-2").String())
	require.Equal(t, "1000000000000000000", native.BalanceOf("buyer-2").String())
	require.Equal(t, "2000000000000000000", native.BalanceOf(testVault).String())
}

func TestNativeOverpaymentKeptInCustody(t *testing.T) {
	svc, _, base, native := newTestService(t)
	cfg := svc.Config()

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodNative))
	require.NoError(t, cfg.SetRate(testAdmin, token.MethodNative, amt("1000000000000000")))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	base.Mint(testVault, amt("10000000000000000000000000"))
	native.Mint("buyer-3", amt("3000000000000000000"))

	// 2 ETH owed, 2.5 ETH attached: the excess stays custodied, no refund.
	_, err := svc.PurchaseWithNative("buyer-3", amt("2000000000000000000000"), amt("2500000000000000000"))
	require.NoError(t, err)
	require.Equal(t, "500000000000000000", native.BalanceOf("buyer-3").String())
	require.Equal(t, "2500000000000000000", native.BalanceOf(testVault).String())
}

func TestConcurrentSweepKeepsPurchasesAtomic(t *testing.T) {
	svc, usdt, base, _ := newTestService(t)
	cfg := svc.Config()

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodUSDT))
	require.NoError(t, cfg.SetRate(testAdmin, token.MethodUSDT, amt("200000000000000000")))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	// The treasury shares the custody lock, so its sweeps cannot land
	// between a purchase's supply check, payment pull, and delivery.
	treas := treasury.New(testAdmin, testVault, svc.native, svc.mu, svc.db, svc.journal, svc.bus)

	perPurchase := amt("2000000000000000000000")
	cost := amt("400000000")
	funding := amt("100000000000000")
	usdt.Mint("buyer-1", funding)
	usdt.Approve("buyer-1", testVault, funding)

	const rounds = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < rounds; i++ {
			_, _ = treas.WithdrawToken(testAdmin, "base")
			_, _ = treas.WithdrawToken(testAdmin, "usdt")
		}
	}()
	for i := 0; i < rounds; i++ {
		base.Mint(testVault, perPurchase)
		_, _ = svc.PurchaseWithUSDT("buyer-1", perPurchase)
	}
	<-done

	// The buyer is only ever debited for tokens that were delivered:
	// payment and delivery move in whole-purchase units, never split.
	delivered := base.BalanceOf("buyer-1")
	spent := new(big.Int).Sub(funding, usdt.BalanceOf("buyer-1"))
	require.Zero(t, new(big.Int).Mod(delivered, perPurchase).Sign())
	require.Zero(t, new(big.Int).Mod(spent, cost).Sign())
	require.Equal(t,
		new(big.Int).Div(delivered, perPurchase).String(),
		new(big.Int).Div(spent, cost).String())
	require.Equal(t, delivered.String(), cfg.TotalSold().String())
}

func TestPersistFaultUnwindsPurchase(t *testing.T) {
	svc, usdt, base, _ := newTestService(t)
	cfg := svc.Config()

	require.NoError(t, cfg.SetSaleOpen(testAdmin, true))
	require.NoError(t, cfg.SetMethod(testAdmin, token.MethodUSDT))
	require.NoError(t, cfg.SetRate(testAdmin, token.MethodUSDT, amt("200000000000000000")))
	require.NoError(t, cfg.SetMinAmount(testAdmin, amt("1000000000000000000000")))
	require.NoError(t, cfg.SetMaxAmount(testAdmin, amt("100000000000000000000000")))

	base.Mint(testVault, amt("10000000000000000000000000"))
	usdt.Mint("buyer-1", amt("100000000000"))
	usdt.Approve("buyer-1", testVault, amt("400000000"))

	// A storage fault aborts the purchase after both transfers; the unwind
	// restores both legs.
	require.NoError(t, svc.db.Close())

	_, err := svc.PurchaseWithUSDT("buyer-1", amt("2000000000000000000000"))
	require.Error(t, err)

	require.Equal(t, "0", base.BalanceOf("buyer-1").String())
	require.Equal(t, "100000000000", usdt.BalanceOf("buyer-1").String())
	require.Equal(t, "0", usdt.BalanceOf(testVault).String())
	require.Equal(t, "0", cfg.TotalSold().String())
}
