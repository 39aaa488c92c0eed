package spare

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_Canonical(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)
	if d1 != d2 {
		t.Errorf("same day gives two different dates")
	}
	// Normalization: day overflow rolls into the next month.
	if got := NewDate(2025, time.June, 31); got != NewDate(2025, time.July, 1) {
		t.Errorf("NewDate(2025, June, 31) = %s, want 2025-07-01", got)
	}
}

func TestDate_AddSub(t *testing.T) {
	d := NewDate(2025, time.June, 23)
	if got := d.Add(-22); got.String() != "2025-06-01" {
		t.Errorf("Add(-22) = %s, want 2025-06-01", got)
	}
	if got := d.Sub(d.Add(-22)); got != 22 {
		t.Errorf("Sub = %d, want 22", got)
	}
	if got := d.Add(-22).Sub(d); got != -22 {
		t.Errorf("Sub = %d, want -22", got)
	}
}

func TestDate_ParseLenient(t *testing.T) {
	d, err := ParseDate("2025-7-1")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("ParseDate = %s, want 2025-07-01", d)
	}
	if _, err := ParseDate("first of july"); err == nil {
		t.Error("ParseDate(garbage) expected error, got nil")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.June, 23)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != `"2025-06-23"` {
		t.Errorf("Marshal = %s, want \"2025-06-23\"", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
