package entropy

// Source yields one unsigned integer per wager. The wager engine only
// defines how a value becomes an outcome, never how it is generated.
type Source interface {
	Next() (uint64, error)
}
