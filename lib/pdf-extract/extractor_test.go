package pdfextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedEngine(text string) engine {
	return func([]byte) string { return text }
}

func TestExtract(t *testing.T) {
	longText := strings.Repeat("resume line\n", 20)
	shortUsable := strings.Repeat("x", 60)

	t.Run("primary result used when long enough", func(t *testing.T) {
		e := impl{primary: fixedEngine(longText), secondary: fixedEngine("should not matter")}
		text, err := e.Extract(nil)
		require.NoError(t, err)
		require.Equal(t, strings.TrimSpace(longText), text)
	})

	t.Run("secondary tried below usable threshold, longer result wins", func(t *testing.T) {
		e := impl{primary: fixedEngine(shortUsable), secondary: fixedEngine(longText)}
		text, err := e.Extract(nil)
		require.NoError(t, err)
		require.Equal(t, strings.TrimSpace(longText), text)
	})

	t.Run("shorter secondary result does not replace primary", func(t *testing.T) {
		e := impl{primary: fixedEngine(shortUsable), secondary: fixedEngine("tiny")}
		text, err := e.Extract(nil)
		require.NoError(t, err)
		require.Equal(t, shortUsable, text)
	})

	t.Run("both engines under floor", func(t *testing.T) {
		e := impl{primary: fixedEngine("a little"), secondary: fixedEngine("even less")}
		_, err := e.Extract(nil)
		require.ErrorIs(t, err, ErrNoExtractableText)
	})

	t.Run("exactly at floor succeeds", func(t *testing.T) {
		atFloor := strings.Repeat("y", minTextLength)
		e := impl{primary: fixedEngine(atFloor), secondary: fixedEngine("")}
		text, err := e.Extract(nil)
		require.NoError(t, err)
		require.Equal(t, atFloor, text)
	})

	t.Run("garbage bytes fail with both real engines", func(t *testing.T) {
		e := impl{primary: extractByRows, secondary: extractPlainText}
		_, err := e.Extract([]byte("not a pdf at all"))
		require.ErrorIs(t, err, ErrNoExtractableText)
	})

	t.Run("truncated pdf header fails without panicking", func(t *testing.T) {
		e := impl{primary: extractByRows, secondary: extractPlainText}
		_, err := e.Extract([]byte("%PDF-1.4 truncated"))
		require.ErrorIs(t, err, ErrNoExtractableText)
	})
}
