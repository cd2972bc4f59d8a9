// File: services/planner/parser_test.go
package planner

import (
	"testing"
)

func TestParseDocumentPlainObject(t *testing.T) {
	doc, err := ParseDocument(`{"day": 1, "theme": "Arrival"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", doc)
	}
	if obj["theme"] != "Arrival" {
		t.Errorf("theme = %v, want Arrival", obj["theme"])
	}
}

func TestParseDocumentStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"day\": 1}\n```"
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["day"] != float64(1) {
		t.Errorf("day = %v, want 1", obj["day"])
	}
}

func TestParseDocumentSlicesSurroundingProse(t *testing.T) {
	raw := "Here is your itinerary:\n{\"day\": 2}\nHope it helps!"
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["day"] != float64(2) {
		t.Errorf("day = %v, want 2", obj["day"])
	}
}

func TestParseDocumentRepairsTrailingComma(t *testing.T) {
	doc, err := ParseDocument(`{"items": [1, 2, 3,], "total": 6,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["total"] != float64(6) {
		t.Errorf("total = %v, want 6", obj["total"])
	}
	items := obj["items"].([]any)
	if len(items) != 3 {
		t.Errorf("items = %v, want 3 entries", items)
	}
}

func TestParseDocumentRepairsBareRange(t *testing.T) {
	doc, err := ParseDocument(`{"cost": 20-30,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["cost"] != float64(25) {
		t.Errorf("cost = %v, want midpoint 25", obj["cost"])
	}
}

func TestParseDocumentRepairsSpacedRange(t *testing.T) {
	doc, err := ParseDocument(`{"cost": 3500 - 4500, "ok": true,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["cost"] != float64(4000) {
		t.Errorf("cost = %v, want midpoint 4000", obj["cost"])
	}
	if obj["ok"] != true {
		t.Errorf("ok = %v", obj["ok"])
	}
}

func TestParseDocumentRepairsQuotedRange(t *testing.T) {
	doc, err := ParseDocument(`{"cost": "40-50", "extra": 1,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["cost"] != float64(45) {
		t.Errorf("cost = %v, want midpoint 45", obj["cost"])
	}
}

func TestParseDocumentJoinsBrokenStrings(t *testing.T) {
	raw := "{\"description\": \"A walk\nthrough the old town\",}"
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := doc.(map[string]any)
	if obj["description"] != "A walk through the old town" {
		t.Errorf("description = %q", obj["description"])
	}
}

func TestParseDocumentEmptyInput(t *testing.T) {
	_, err := ParseDocument("   \n  ")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !IsMalformedDocument(err) {
		t.Errorf("expected malformed-document error, got %v", err)
	}
}

func TestParseDocumentUnrecoverable(t *testing.T) {
	_, err := ParseDocument(`{"broken": [1, 2`)
	if err == nil {
		t.Fatal("expected error for truncated document")
	}
	if !IsMalformedDocument(err) {
		t.Errorf("expected malformed-document error, got %v", err)
	}
}

func TestParseObjectAcceptsNonObject(t *testing.T) {
	obj, err := ParseObject(`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obj) != 0 {
		t.Errorf("expected empty map for array input, got %v", obj)
	}
}
