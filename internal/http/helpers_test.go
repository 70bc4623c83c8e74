package http

import (
	"strings"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{10050, "$100.50"},
		{-10050, "-$100.50"},
		{1, "$0.01"},
		{0, "$0.00"},
		{1500000, "$15000.00"},
	}
	for _, tc := range cases {
		if got := formatUSD(tc.cents); got != tc.want {
			t.Fatalf("formatUSD(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("got %q", got)
	}
	if got := sanitizeInput("line1\nline2"); got != "line1\nline2" {
		t.Fatalf("newlines should survive, got %q", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if !strings.HasPrefix(a, "req_") || a == b {
		t.Fatalf("ids not unique or malformed: %q %q", a, b)
	}
}

func TestRateLimiterWindow(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < maxRequestsPerMinute; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Fatal("request over the limit should be rejected")
	}
	if !rl.allow("5.6.7.8") {
		t.Fatal("other clients are unaffected")
	}
}
