package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `"2026-08-30"` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back.String() != "2026-08-30" {
		t.Fatalf("round trip mismatch: %s", back.String())
	}
}

func TestDate_UnmarshalRejectsTimestamps(t *testing.T) {
	t.Parallel()

	var d Date
	if err := json.Unmarshal([]byte(`"2026-08-30T12:00:00Z"`), &d); err == nil {
		t.Fatal("expected error for timestamp input")
	}
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d Date
	if err := d.Scan(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time error: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Fatalf("scan mismatch: %s", d.String())
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan nil error: %v", err)
	}
}
