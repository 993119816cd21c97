package presale

import (
	"database/sql"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"px-platform/internal/event"
	"px-platform/internal/ledger"
	"px-platform/internal/logger"
	"px-platform/internal/token"
)

type Service struct {
	// mu serializes every movement on the custody account. It is shared
	// with the wager engine and the treasury so no sweep or settlement can
	// interleave inside a purchase's check-then-move window.
	mu      *sync.Mutex
	cfg     *Config
	native  *token.Native
	account string
	db      *sql.DB
	journal *ledger.Service
	bus     *event.Bus
}

// New wires the sale engine. `account` is the custody identity holding the
// presale token supply and receiving payments; `mu` is the custody lock
// shared by every engine moving that account's funds.
func New(cfg *Config, native *token.Native, account string, mu *sync.Mutex, db *sql.DB, journal *ledger.Service, bus *event.Bus) *Service {
	return &Service{
		mu:      mu,
		cfg:     cfg,
		native:  native,
		account: account,
		db:      db,
		journal: journal,
		bus:     bus,
	}
}

func (s *Service) Config() *Config { return s.cfg }

// checkPurchase runs the ordered purchase gate and fails on the first
// violation. The flag and method checks come before any ledger lookup.
func (s *Service) checkPurchase(cfg snapshot, amount *big.Int, method token.Method) (token.Ledger, error) {
	if !cfg.saleOpen {
		return nil, ErrSaleClosed
	}
	if method != cfg.method {
		return nil, ErrWrongMethod
	}
	if amount.Cmp(cfg.minAmount) < 0 {
		return nil, ErrBelowMinimum
	}
	if amount.Cmp(cfg.maxAmount) > 0 {
		return nil, ErrAboveMaximum
	}
	base := token.Get(cfg.baseToken)
	if base == nil {
		return nil, token.ErrUnknownLedger
	}
	if base.BalanceOf(s.account).Cmp(amount) < 0 {
		return nil, ErrInsufficientSupply
	}
	return base, nil
}

// PurchaseWithUSDT pulls the quoted payment from the buyer's allowance and
// pushes the sold tokens back. Both legs commit together or not at all.
func (s *Service) PurchaseWithUSDT(buyer string, amount *big.Int) (*Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.snapshot()

	base, err := s.checkPurchase(cfg, amount, token.MethodUSDT)
	if err != nil {
		return nil, err
	}
	pay := token.Get(cfg.paymentAsset)
	if pay == nil {
		return nil, token.ErrUnknownLedger
	}

	cost := convert(amount, cfg.usdtRate, pay.Decimals())

	if err := pay.TransferFrom(s.account, buyer, s.account, cost); err != nil {
		return nil, err
	}
	if err := base.Transfer(s.account, buyer, amount); err != nil {
		if rerr := pay.Transfer(s.account, buyer, cost); rerr != nil {
			logger.Log.Error("purchase refund failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		return nil, err
	}

	rec := &Purchase{
		Buyer:     buyer,
		Method:    token.MethodUSDT.String(),
		AmountOut: amount.String(),
		AmountIn:  cost.String(),
		Time:      time.Now().Unix(),
	}

	if err := s.persist(rec, pay.Symbol(), base.Symbol(), buyer, cost, amount); err != nil {
		if rerr := base.Transfer(buyer, s.account, amount); rerr != nil {
			logger.Log.Error("purchase unwind failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		if rerr := pay.Transfer(s.account, buyer, cost); rerr != nil {
			logger.Log.Error("purchase refund failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		return nil, err
	}

	s.cfg.addSold(amount)
	s.bus.Publish(event.EventTokenPurchased, rec)

	return rec, nil
}

// PurchaseWithNative treats the attached value as the payment. Excess over
// the quoted cost stays in custody; there is no refund path.
func (s *Service) PurchaseWithNative(buyer string, amount, value *big.Int) (*Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.snapshot()

	base, err := s.checkPurchase(cfg, amount, token.MethodNative)
	if err != nil {
		return nil, err
	}

	cost := convert(amount, cfg.ethRate, s.native.Decimals())
	if value.Cmp(cost) < 0 {
		return nil, ErrInsufficientPayment
	}

	if err := s.native.Transfer(buyer, s.account, value); err != nil {
		return nil, err
	}
	if err := base.Transfer(s.account, buyer, amount); err != nil {
		if rerr := s.native.Transfer(s.account, buyer, value); rerr != nil {
			logger.Log.Error("purchase refund failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		return nil, err
	}

	rec := &Purchase{
		Buyer:     buyer,
		Method:    token.MethodNative.String(),
		AmountOut: amount.String(),
		AmountIn:  value.String(),
		Time:      time.Now().Unix(),
	}

	if err := s.persist(rec, s.native.Symbol(), base.Symbol(), buyer, value, amount); err != nil {
		if rerr := base.Transfer(buyer, s.account, amount); rerr != nil {
			logger.Log.Error("purchase unwind failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		if rerr := s.native.Transfer(s.account, buyer, value); rerr != nil {
			logger.Log.Error("purchase refund failed",
				zap.String("buyer", buyer), zap.Error(rerr))
		}
		return nil, err
	}

	s.cfg.addSold(amount)
	s.bus.Publish(event.EventTokenPurchased, rec)

	return rec, nil
}

func (s *Service) persist(rec *Purchase, payAsset, baseAsset, buyer string, in, out *big.Int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO purchases(buyer,method,amount_out,amount_in,ts)
	VALUES (?,?,?,?,?)
	`, rec.Buyer, rec.Method, rec.AmountOut, rec.AmountIn, rec.Time)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := s.journal.Movement(tx, payAsset, buyer, s.account, in); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.journal.Movement(tx, baseAsset, s.account, buyer, out); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
