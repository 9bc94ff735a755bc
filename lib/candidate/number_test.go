package candidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextCandidateNumber(t *testing.T) {
	june := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("first allocation of the month", func(t *testing.T) {
		require.Equal(t, "C2026060001", nextCandidateNumber(june, ""))
	})

	t.Run("increments the highest existing number", func(t *testing.T) {
		require.Equal(t, "C2026060008", nextCandidateNumber(june, "C2026060007"))
	})

	t.Run("new month starts its own sequence", func(t *testing.T) {
		require.Equal(t, "C2026070001", nextCandidateNumber(july, "C2026060042"))
	})

	t.Run("alternate import format is ignored", func(t *testing.T) {
		require.Equal(t, "C2026060001", nextCandidateNumber(june, "CAND-20260601-AB12"))
	})

	t.Run("rolls past four digits without truncating", func(t *testing.T) {
		require.Equal(t, "C20260610000", nextCandidateNumber(june, "C2026069999"))
	})

	t.Run("keeps counting after the sequence widened", func(t *testing.T) {
		require.Equal(t, "C20260610001", nextCandidateNumber(june, "C20260610000"))
		require.Equal(t, "C2026061000000", nextCandidateNumber(june, "C202606999999"))
	})
}
