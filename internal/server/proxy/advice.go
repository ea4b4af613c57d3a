package proxy

import "sync/atomic"

// healthAdvice is the built-in rotation served by the /health-advice route.
var healthAdvice = []string{
	"Drink enough water through the day; thirst lags behind dehydration.",
	"Aim for 7 to 9 hours of sleep on a consistent schedule.",
	"Take a short walk after meals to help regulate blood sugar.",
	"Wash your hands for at least 20 seconds before eating.",
	"Schedule regular checkups even when you feel healthy.",
	"Stretch for a few minutes after long periods of sitting.",
	"Keep a list of your medications and their dosages with you.",
	"Limit added sugar; check labels on drinks and sauces.",
	"Protect your skin with sunscreen on cloudy days too.",
	"If symptoms persist for more than a few days, talk to a clinician.",
}

// AdviceSource hands out health tips in rotation. Safe for concurrent use.
type AdviceSource struct {
	next atomic.Uint64
}

// NewAdviceSource returns a rotation starting at the first tip.
func NewAdviceSource() *AdviceSource {
	return &AdviceSource{}
}

// Next returns the next tip in the rotation.
func (s *AdviceSource) Next() string {
	n := s.next.Add(1) - 1
	return healthAdvice[n%uint64(len(healthAdvice))]
}
