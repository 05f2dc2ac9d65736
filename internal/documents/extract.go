package documents

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPages caps how many pages feed classification. Form numbers and
// titles appear on the first pages of USCIS paperwork.
const extractPages = 10

// extractText pulls readable text out of a PDF's decoded content streams.
// Extraction is best effort; classification falls back to the filename
// when nothing usable comes out.
func extractText(logger *slog.Logger, data []byte, contentType string) string {
	if contentType != "application/pdf" {
		return ""
	}

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTCONTENT

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		logger.Warn("failed to read PDF for text extraction", "error", err)
		return ""
	}

	count := ctx.PageCount
	if count > extractPages {
		count = extractPages
	}

	var sb strings.Builder
	for page := 1; page <= count; page++ {
		content, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil {
			logger.Warn("failed to extract page content", "page", page, "error", err)
			continue
		}
		if content == nil {
			continue
		}

		raw, err := io.ReadAll(content)
		if err != nil {
			continue
		}

		appendLiterals(&sb, raw)
	}

	return sb.String()
}

// appendLiterals collects parenthesized string literals from a content
// stream, which is where text-drawing operators carry their glyphs.
func appendLiterals(sb *strings.Builder, stream []byte) {
	depth := 0
	escaped := false

	for _, b := range stream {
		if escaped {
			if depth > 0 {
				sb.WriteByte(b)
			}
			escaped = false
			continue
		}

		switch b {
		case '\\':
			escaped = true
		case '(':
			if depth > 0 {
				sb.WriteByte(b)
			}
			depth++
		case ')':
			depth--
			if depth > 0 {
				sb.WriteByte(b)
			} else if depth == 0 {
				sb.WriteByte(' ')
			}
			if depth < 0 {
				depth = 0
			}
		default:
			if depth > 0 {
				sb.WriteByte(b)
			}
		}
	}
}
