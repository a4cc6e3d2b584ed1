package main

import "time"

// pacer spaces frame rendering to a fixed rate. A zero or negative rate
// disables pacing, which suits offline rendering.
type pacer struct {
	interval time.Duration
	next     time.Time
}

func newPacer(fps int) *pacer {
	if fps <= 0 {
		return &pacer{}
	}
	interval := time.Second / time.Duration(fps)
	return &pacer{
		interval: interval,
		next:     time.Now().Add(interval),
	}
}

// wait blocks until the next frame is due.
func (p *pacer) wait() {
	if p.interval <= 0 {
		return
	}
	if d := time.Until(p.next); d > 0 {
		time.Sleep(d)
	}
	p.next = time.Now().Add(p.interval)
}
