package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestResolveAmount(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "json number", raw: `2500`, want: 2500},
		{name: "quoted string", raw: `"2500"`, want: 2500},
		{name: "thousands separator", raw: `"2,500"`, want: 2500},
		{name: "currency prefix", raw: `"KSh 2500"`, want: 2500},
		{name: "currency and separator", raw: `"KSh 12,500"`, want: 12500},
		{name: "null", raw: `null`, want: 0},
		{name: "empty", raw: ``, want: 0},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "not a number", raw: `"abc"`, wantErr: true},
		{name: "fractional", raw: `2500.50`, wantErr: true},
		{name: "trailing zero decimal", raw: `"2500.0"`, want: 2500},
		{name: "exponent notation", raw: `"2.5e3"`, wantErr: true},
		{name: "uppercase exponent", raw: `2.5E3`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveAmount(json.RawMessage(tc.raw))
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPaymentAmount) {
					t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRecordPaymentRequest_ResolveDate(t *testing.T) {
	r := RecordPaymentRequest{Date: "2024-01-15"}
	got, err := r.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected date %v", got)
	}

	r2 := RecordPaymentRequest{Date: "2024-01-15T14:30:00Z"}
	got, err = r2.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 14 {
		t.Fatalf("unexpected date %v", got)
	}

	r3 := RecordPaymentRequest{Date: "  "}
	got, err = r3.ResolveDate()
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for blank date, got %v err=%v", got, err)
	}

	r4 := RecordPaymentRequest{Date: "15/01/2024"}
	if _, err := r4.ResolveDate(); !errors.Is(err, ErrInvalidPaymentDate) {
		t.Fatalf("expected ErrInvalidPaymentDate, got %v", err)
	}
}
