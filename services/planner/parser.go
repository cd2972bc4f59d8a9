// File: services/planner/parser.go
package planner

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// The generation backend outputs free text that is supposed to contain one
// JSON object but often arrives wrapped in code fences, truncated, or with
// small syntax defects (trailing commas, cost ranges instead of numbers,
// raw newlines inside string values). ParseDocument recovers a structured
// document with an ordered sequence of increasingly aggressive attempts.

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	duplicateComma  = regexp.MustCompile(`,(\s*,)+`)
	quotedRangeRe   = regexp.MustCompile(`"\s*(\d+)\s*-\s*(\d+)\s*"`)
	bareRangeRe     = regexp.MustCompile(`(:\s*)(\d+)\s*-\s*(\d+)`)
	stringSpanRe    = regexp.MustCompile(`(?s)"(?:[^"\\]|\\.)*"`)
	rangeDigitsRe   = regexp.MustCompile(`\d+`)
)

// ParseDocument parses raw model output into a decoded JSON value.
// A document that parses but is not an object (e.g. a bare array) is
// accepted; shape validation belongs to the normalizers. All failures come
// back as *MalformedDocumentError.
func ParseDocument(raw string) (any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, &MalformedDocumentError{Err: errors.New("empty document")}
	}

	text = stripCodeFences(text)

	if doc, err := strictParse(text); err == nil {
		return doc, nil
	}

	// Slice from the first '{' to the last '}' and retry.
	sliced := text
	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			sliced = text[start : end+1]
			if doc, err := strictParse(sliced); err == nil {
				return doc, nil
			}
		}
	}

	repaired := repairDocument(sliced)
	doc, err := strictParse(repaired)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var offset int64
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}
		return nil, &MalformedDocumentError{Offset: offset, Err: err}
	}
	return doc, nil
}

// ParseObject parses raw output and requires the result to be a JSON object.
func ParseObject(raw string) (map[string]any, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return obj, nil
}

func strictParse(text string) (any, error) {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// repairDocument applies textual repairs in a fixed order: drop trailing
// commas, collapse duplicate commas, replace numeric ranges with their
// midpoint, then join string values broken by raw newlines.
func repairDocument(text string) string {
	text = trailingCommaRe.ReplaceAllString(text, "$1")
	text = duplicateComma.ReplaceAllString(text, ",")
	text = quotedRangeRe.ReplaceAllStringFunc(text, rangeMidpoint)
	text = bareRangeRe.ReplaceAllStringFunc(text, func(match string) string {
		colon := strings.Index(match, ":")
		return match[:colon+1] + " " + rangeMidpoint(match[colon+1:])
	})
	text = stringSpanRe.ReplaceAllStringFunc(text, func(span string) string {
		if !strings.ContainsAny(span, "\n\r") {
			return span
		}
		span = strings.ReplaceAll(span, "\r\n", " ")
		span = strings.ReplaceAll(span, "\n", " ")
		span = strings.ReplaceAll(span, "\r", " ")
		return span
	})
	return text
}

// rangeMidpoint turns a "<a>-<b>" fragment into the integer midpoint of the
// first two numbers found, (a+b)/2 truncated.
func rangeMidpoint(fragment string) string {
	nums := rangeDigitsRe.FindAllString(fragment, 2)
	if len(nums) < 2 {
		return fragment
	}
	a, errA := strconv.Atoi(nums[0])
	b, errB := strconv.Atoi(nums[1])
	if errA != nil || errB != nil {
		return fragment
	}
	return strconv.Itoa((a + b) / 2)
}
