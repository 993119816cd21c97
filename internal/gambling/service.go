package gambling

import (
	"database/sql"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"px-platform/internal/entropy"
	"px-platform/internal/event"
	"px-platform/internal/ledger"
	"px-platform/internal/logger"
	"px-platform/internal/token"
)

type Service struct {
	// mu is the custody lock shared with the sale engine and the treasury;
	// holding it across the whole settlement keeps sweeps from landing
	// between the balance check, the stake pull, and the payout.
	mu      *sync.Mutex
	cfg     *Config
	native  *token.Native
	source  entropy.Source
	account string
	db      *sql.DB
	journal *ledger.Service
	bus     *event.Bus
}

func New(cfg *Config, native *token.Native, source entropy.Source, account string, mu *sync.Mutex, db *sql.DB, journal *ledger.Service, bus *event.Bus) *Service {
	return &Service{
		mu:      mu,
		cfg:     cfg,
		native:  native,
		source:  source,
		account: account,
		db:      db,
		journal: journal,
		bus:     bus,
	}
}

func (s *Service) Config() *Config { return s.cfg }

// checkWager gates a wager before any funds move. The house balance check
// guarantees a win can be paid before the draw commits; it runs against the
// pre-stake balance, which also covers the doubled payout once the stake
// arrives. An unset random bound is reported only once the house can cover
// the stake.
func (s *Service) checkWager(cfg snapshot, method token.Method, houseBalance *big.Int) error {
	if !cfg.open {
		return ErrGamblingClosed
	}
	if method != cfg.method {
		return ErrWrongMethod
	}
	if houseBalance.Cmp(cfg.gameAmount) < 0 {
		return ErrInsufficientHouseFunds
	}
	if cfg.randomMax == 0 {
		return ErrZeroRandomBound
	}
	return nil
}

// WagerWithUSDT pulls the fixed stake from the player's allowance, draws,
// and on a win pays back twice the stake.
func (s *Service) WagerWithUSDT(player string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.snapshot()

	pay := token.Get(cfg.paymentAsset)
	if pay == nil {
		return nil, token.ErrUnknownLedger
	}

	if err := s.checkWager(cfg, token.MethodUSDT, pay.BalanceOf(s.account)); err != nil {
		return nil, err
	}

	if err := pay.TransferFrom(s.account, player, s.account, cfg.gameAmount); err != nil {
		return nil, err
	}

	win, _, err := draw(s.source, cfg.randomMax)
	if err != nil {
		if rerr := pay.Transfer(s.account, player, cfg.gameAmount); rerr != nil {
			logger.Log.Error("stake refund failed",
				zap.String("player", player), zap.Error(rerr))
		}
		return nil, err
	}

	payout := new(big.Int)
	if win {
		payout.Mul(cfg.gameAmount, big.NewInt(2))
		if err := pay.Transfer(s.account, player, payout); err != nil {
			if rerr := pay.Transfer(s.account, player, cfg.gameAmount); rerr != nil {
				logger.Log.Error("stake refund failed",
					zap.String("player", player), zap.Error(rerr))
			}
			return nil, err
		}
	}

	rec := &Result{
		Player:    player,
		Method:    token.MethodUSDT.String(),
		Stake:     cfg.gameAmount.String(),
		WinStatus: win,
		Payout:    payout.String(),
		Time:      time.Now().Unix(),
	}

	if err := s.persist(rec, pay.Symbol(), player, cfg.gameAmount, win, payout); err != nil {
		if win {
			if rerr := pay.Transfer(player, s.account, payout); rerr != nil {
				logger.Log.Error("payout unwind failed",
					zap.String("player", player), zap.Error(rerr))
			}
		}
		if rerr := pay.Transfer(s.account, player, cfg.gameAmount); rerr != nil {
			logger.Log.Error("stake refund failed",
				zap.String("player", player), zap.Error(rerr))
		}
		return nil, err
	}

	s.bus.Publish(event.EventWagerSettled, rec)
	return rec, nil
}

// WagerWithNative takes the attached value as the stake; it must equal the
// configured game amount exactly.
func (s *Service) WagerWithNative(player string, value *big.Int) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.snapshot()

	if err := s.checkWager(cfg, token.MethodNative, s.native.BalanceOf(s.account)); err != nil {
		return nil, err
	}
	if value.Cmp(cfg.gameAmount) != 0 {
		return nil, ErrWrongStake
	}

	if err := s.native.Transfer(player, s.account, value); err != nil {
		return nil, err
	}

	win, _, err := draw(s.source, cfg.randomMax)
	if err != nil {
		if rerr := s.native.Transfer(s.account, player, value); rerr != nil {
			logger.Log.Error("stake refund failed",
				zap.String("player", player), zap.Error(rerr))
		}
		return nil, err
	}

	payout := new(big.Int)
	if win {
		payout.Mul(cfg.gameAmount, big.NewInt(2))
		if err := s.native.Transfer(s.account, player, payout); err != nil {
			if rerr := s.native.Transfer(s.account, player, value); rerr != nil {
				logger.Log.Error("stake refund failed",
					zap.String("player", player), zap.Error(rerr))
			}
			return nil, err
		}
	}

	rec := &Result{
		Player:    player,
		Method:    token.MethodNative.String(),
		Stake:     value.String(),
		WinStatus: win,
		Payout:    payout.String(),
		Time:      time.Now().Unix(),
	}

	if err := s.persist(rec, s.native.Symbol(), player, value, win, payout); err != nil {
		if win {
			if rerr := s.native.Transfer(player, s.account, payout); rerr != nil {
				logger.Log.Error("payout unwind failed",
					zap.String("player", player), zap.Error(rerr))
			}
		}
		if rerr := s.native.Transfer(s.account, player, value); rerr != nil {
			logger.Log.Error("stake refund failed",
				zap.String("player", player), zap.Error(rerr))
		}
		return nil, err
	}

	s.bus.Publish(event.EventWagerSettled, rec)
	return rec, nil
}

func (s *Service) persist(rec *Result, asset, player string, stake *big.Int, win bool, payout *big.Int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	winFlag := 0
	if win {
		winFlag = 1
	}

	_, err = tx.Exec(`
	INSERT INTO wagers(player,method,stake,win,payout,ts)
	VALUES (?,?,?,?,?,?)
	`, rec.Player, rec.Method, rec.Stake, winFlag, rec.Payout, rec.Time)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := s.journal.Movement(tx, asset, player, s.account, stake); err != nil {
		tx.Rollback()
		return err
	}
	if win {
		if err := s.journal.Movement(tx, asset, s.account, player, payout); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
