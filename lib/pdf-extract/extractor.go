package pdfextract

import (
	"bytes"
	"strings"

	dslipakpdf "github.com/dslipak/pdf"
	ledongthucpdf "github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// Below this length the primary result is considered not usable and the
	// secondary engine is tried as well.
	usableTextThreshold = 100
	// Below this floor extraction fails outright.
	minTextLength = 50
)

// ErrNoExtractableText is returned when neither engine recovers enough text.
var ErrNoExtractableText = errors.New("likely image-based document, no extractable text")

type Provider interface {
	Extract(documentBytes []byte) (text string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		primary:   extractByRows,
		secondary: extractPlainText,
	}
}

// An engine returns whatever text it can recover, empty on failure.
type engine func(documentBytes []byte) string

type impl struct {
	primary   engine
	secondary engine
}

// Extract runs the layout-aware engine first and falls back to the more
// permissive one when the result is too short, keeping whichever text is
// longer. Engine-level failures are logged inside the engines and treated as
// empty output so one engine's crash never blocks trying the other.
func (i impl) Extract(documentBytes []byte) (string, error) {
	text := i.primary(documentBytes)

	if len(strings.TrimSpace(text)) < usableTextThreshold {
		alt := i.secondary(documentBytes)
		if len(strings.TrimSpace(alt)) > len(strings.TrimSpace(text)) {
			text = alt
		}
	}

	text = strings.TrimSpace(text)
	if len(text) < minTextLength {
		return "", ErrNoExtractableText
	}
	return text, nil
}

// extractByRows reads text row by row, which keeps tables and columns in a
// usable order. The reader panics on some malformed streams, hence the recover.
func extractByRows(documentBytes []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("row-based pdf extraction failed")
			text = ""
		}
	}()
	reader, err := ledongthucpdf.NewReader(bytes.NewReader(documentBytes), int64(len(documentBytes)))
	if err != nil {
		log.WithError(err).Warn("row-based pdf extraction failed")
		return ""
	}

	var parts []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			log.WithError(err).WithField("page", pageNum).Debug("pdf page text not readable")
			continue
		}
		var sb strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}
	return strings.Join(parts, "\n\n")
}

// extractPlainText is the permissive fallback, content stream order as-is.
func extractPlainText(documentBytes []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("plain-text pdf extraction failed")
			text = ""
		}
	}()
	reader, err := dslipakpdf.NewReader(bytes.NewReader(documentBytes), int64(len(documentBytes)))
	if err != nil {
		log.WithError(err).Warn("plain-text pdf extraction failed")
		return ""
	}
	contentReader, err := reader.GetPlainText()
	if err != nil {
		log.WithError(err).Warn("plain-text pdf extraction failed")
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(contentReader); err != nil {
		log.WithError(err).Warn("plain-text pdf extraction failed")
		return ""
	}
	return buf.String()
}
