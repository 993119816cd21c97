package gambling

import "px-platform/internal/entropy"

// draw maps one entropy value onto a win/loss outcome. A draw of zero wins,
// so bound is the single dial controlling the 1/bound win probability.
// bound must be validated non-zero before this is called.
func draw(src entropy.Source, bound uint64) (win bool, value uint64, err error) {
	e, err := src.Next()
	if err != nil {
		return false, 0, err
	}
	value = e % bound
	return value == 0, value, nil
}
