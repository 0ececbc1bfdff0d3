package digest

import (
	"time"
)

// matchesToday decides whether an item's publish time falls on the current
// UTC calendar day. Only the date component is compared; feed-provided times
// are treated as already UTC. An absent timestamp never matches when the
// filter is active, so undated items can't masquerade as fresh.
func matchesToday(published *time.Time, todayOnly bool, now time.Time) bool {
	if !todayOnly {
		return true
	}
	if published == nil {
		return false
	}

	y1, m1, d1 := published.UTC().Date()
	y2, m2, d2 := now.UTC().Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}
