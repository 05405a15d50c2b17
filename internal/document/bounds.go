package document

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// outOfRange reports addressing outside the document. Callers are expected to
// clamp first, so this is a logic error: debug builds panic, others log and
// let the caller clamp.
func (d *Document) outOfRange(op string, value, limit int) {
	if strictBounds {
		panic(fmt.Sprintf("document: %s %d out of range (limit %d)", op, value, limit))
	}
	log.Warn().Str("op", op).Int("value", value).Int("limit", limit).Msg("clamping out-of-range document addressing")
}

func (d *Document) clampOffset(op string, offset int) int {
	length := d.Length()
	if offset < 0 || offset > length {
		d.outOfRange(op, offset, length)
		return clampInt(offset, 0, length)
	}
	return offset
}

func (d *Document) clampRange(op string, offset, count int) (int, int) {
	offset = d.clampOffset(op, offset)
	remaining := d.Length() - offset
	if count < 0 || count > remaining {
		d.outOfRange(op+" count", count, remaining)
		count = clampInt(count, 0, remaining)
	}
	return offset, count
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
