package expiry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// ParseDate parses a "YYYY-MM-DD" calendar string into midnight of that day
// in loc. The month component is 1-indexed in both the string and time.Date,
// so no index shifting happens here.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, value)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, value)
		}
		nums[i] = n
	}

	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, loc), nil
}

// DaysUntil returns the signed whole-day offset between the expiry date and
// the reference date. Negative means already expired, zero expires today.
// Both sides are truncated to midnight before subtraction; the quotient is
// rounded so a DST-shortened or -lengthened day still counts as one day.
func DaysUntil(expiry, ref time.Time) int {
	e := midnight(expiry)
	r := midnight(ref)
	return int(math.Round(e.Sub(r).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
