package logger

import "go.uber.org/zap"

// Log starts as a no-op so packages can log unconditionally; Init swaps in
// the real logger at startup.
var Log = zap.NewNop()

func Init() {
	l, _ := zap.NewProduction()
	Log = l
}
