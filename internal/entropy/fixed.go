package entropy

import "errors"

var ErrExhausted = errors.New("entropy source exhausted")

// Fixed replays a predetermined sequence. Draw logic is tested against it
// instead of an unpredictable ambient source.
type Fixed struct {
	values []uint64
	next   int
}

func Sequence(values ...uint64) *Fixed {
	return &Fixed{values: values}
}

func (f *Fixed) Next() (uint64, error) {
	if f.next >= len(f.values) {
		return 0, ErrExhausted
	}
	v := f.values[f.next]
	f.next++
	return v, nil
}
