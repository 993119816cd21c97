package treasury

import (
	"database/sql"
	"errors"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"px-platform/internal/event"
	"px-platform/internal/ledger"
	"px-platform/internal/logger"
	"px-platform/internal/token"
)

var ErrNotAdmin = errors.New("caller is not the administrator")

type Withdrawal struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
	To     string `json:"to"`
	Time   int64  `json:"time"`
}

// Service sweeps custodied balances to the administrator. Withdrawals
// ignore the engines' open flags; only the identity check gates them.
// Sweeps take the custody lock shared with the sale and wager engines, so a
// sweep never lands halfway through a purchase or a settlement.
type Service struct {
	mu      *sync.Mutex
	admin   string
	account string
	native  *token.Native
	db      *sql.DB
	journal *ledger.Service
	bus     *event.Bus
}

func New(admin, account string, native *token.Native, mu *sync.Mutex, db *sql.DB, journal *ledger.Service, bus *event.Bus) *Service {
	return &Service{
		mu:      mu,
		admin:   admin,
		account: account,
		native:  native,
		db:      db,
		journal: journal,
		bus:     bus,
	}
}

// WithdrawToken moves the full custodied balance of one asset to the
// administrator. A zero balance is a successful no-op.
func (s *Service) WithdrawToken(caller, ref string) (*Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return nil, ErrNotAdmin
	}
	led := token.Get(ref)
	if led == nil {
		return nil, token.ErrUnknownLedger
	}

	balance := led.BalanceOf(s.account)
	if balance.Sign() > 0 {
		if err := led.Transfer(s.account, caller, balance); err != nil {
			return nil, err
		}
		if err := s.record(led.Symbol(), caller, balance); err != nil {
			if rerr := led.Transfer(caller, s.account, balance); rerr != nil {
				logger.Log.Error("withdrawal unwind failed",
					zap.String("asset", led.Symbol()), zap.Error(rerr))
			}
			return nil, err
		}
	}

	rec := &Withdrawal{
		Asset:  led.Symbol(),
		Amount: balance.String(),
		To:     caller,
		Time:   time.Now().Unix(),
	}
	s.bus.Publish(event.EventTreasurySwept, rec)

	return rec, nil
}

// WithdrawNative sweeps the custodied native-currency balance.
func (s *Service) WithdrawNative(caller string) (*Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return nil, ErrNotAdmin
	}

	balance := s.native.BalanceOf(s.account)
	if balance.Sign() > 0 {
		if err := s.native.Transfer(s.account, caller, balance); err != nil {
			return nil, err
		}
		if err := s.record(s.native.Symbol(), caller, balance); err != nil {
			if rerr := s.native.Transfer(caller, s.account, balance); rerr != nil {
				logger.Log.Error("withdrawal unwind failed",
					zap.String("asset", s.native.Symbol()), zap.Error(rerr))
			}
			return nil, err
		}
	}

	rec := &Withdrawal{
		Asset:  s.native.Symbol(),
		Amount: balance.String(),
		To:     caller,
		Time:   time.Now().Unix(),
	}
	s.bus.Publish(event.EventTreasurySwept, rec)

	return rec, nil
}

func (s *Service) record(asset, to string, amount *big.Int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := s.journal.Movement(tx, asset, s.account, to, amount); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
