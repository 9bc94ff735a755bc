package candidate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// numberPrefix builds the month-scoped prefix, e.g. C202608.
func numberPrefix(now time.Time) string {
	return fmt.Sprintf("C%04d%02d", now.Year(), int(now.Month()))
}

// nextCandidateNumber produces the next number for the month of now, given
// the highest existing number with the same prefix (empty when none).
// Numbers are monotonically increasing within a calendar month; uniqueness
// under concurrent allocation is enforced by the database index, callers
// retry on conflict. The sequence is zero-padded to four digits and widens
// past 9999.
func nextCandidateNumber(now time.Time, latest string) string {
	prefix := numberPrefix(now)
	seq := 1
	if strings.HasPrefix(latest, prefix) && len(latest) >= len(prefix)+4 {
		if last, err := strconv.Atoi(latest[len(prefix):]); err == nil {
			seq = last + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}
