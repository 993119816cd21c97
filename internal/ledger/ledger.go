package ledger

import (
	"database/sql"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Service writes the double-entry journal behind every fund movement. Both
// legs of a movement share one ref so a transfer can be reconciled later.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Movement records amount leaving `from` and arriving at `to` for one asset.
func (s *Service) Movement(tx *sql.Tx, asset, from, to string, amount *big.Int) error {
	ref := uuid.New().String()
	ts := time.Now().Unix()

	_, err := tx.Exec(`
	INSERT INTO journal(ref,account,asset,debit,credit,ts)
	VALUES (?,?,?,?,?,?)
	`, ref, from, asset, amount.String(), "0", ts)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO journal(ref,account,asset,debit,credit,ts)
	VALUES (?,?,?,?,?,?)
	`, ref, to, asset, "0", amount.String(), ts)

	return err
}
