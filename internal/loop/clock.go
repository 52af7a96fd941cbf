package loop

import "time"

// Clock abstracts timer creation so tests can drive the loop at
// millisecond cadence without touching package-level time functions.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// Timer is the loop's single suspension primitive. Waiting on C blocks
// until the timer fires; Reset re-arms it for the next tick.
type Timer interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

type realClock struct{}

func (realClock) NewTimer(d time.Duration) Timer { return timerWrap{time.NewTimer(d)} }

type timerWrap struct{ *time.Timer }

func (t timerWrap) C() <-chan time.Time { return t.Timer.C }

func (t timerWrap) Reset(d time.Duration) { t.Timer.Reset(d) }

func (t timerWrap) Stop() { t.Timer.Stop() }
