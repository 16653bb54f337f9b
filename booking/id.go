package booking

import (
	"fmt"
	"time"
)

const bookingIdPrefix = "BMS"

// idGenerator hands out "BMS<unix millis>" ids, bumping the timestamp when
// the clock has not advanced since the previous id.
type idGenerator struct {
	last int64
}

func (g *idGenerator) next(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s%d", bookingIdPrefix, ms)
}
