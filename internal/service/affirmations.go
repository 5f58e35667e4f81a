package service

import (
	"sync"
	"time"
)

// Affirmations shown on the weight tab, rotated on a timer.
var Affirmations = []string{
	"Every healthy choice you make is an investment in your future self.",
	"Progress, not perfection, is the goal.",
	"Your body is capable of amazing things.",
	"Small steps lead to big changes.",
	"You are stronger than you think.",
	"Consistency beats perfection every time.",
	"Your health journey is unique and valuable.",
	"Every day is a new opportunity to care for yourself.",
	"You deserve to feel strong and confident.",
	"Trust the process and celebrate small wins.",
}

// AffirmationRotator cycles through the affirmation list on a fixed interval.
type AffirmationRotator struct {
	mu       sync.Mutex
	index    int
	ticker   *time.Ticker
	stopOnce sync.Once
	stop     chan struct{}
}

// NewAffirmationRotator starts a rotator advancing every interval.
func NewAffirmationRotator(interval time.Duration) *AffirmationRotator {
	r := &AffirmationRotator{
		ticker: time.NewTicker(interval),
		stop:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *AffirmationRotator) run() {
	for {
		select {
		case <-r.ticker.C:
			r.Next()
		case <-r.stop:
			return
		}
	}
}

// Current returns the affirmation currently on display.
func (r *AffirmationRotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Affirmations[r.index]
}

// Next advances to the following affirmation, wrapping around.
func (r *AffirmationRotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(Affirmations)
	return Affirmations[r.index]
}

// Stop halts the rotation timer.
func (r *AffirmationRotator) Stop() {
	r.stopOnce.Do(func() {
		r.ticker.Stop()
		close(r.stop)
	})
}
