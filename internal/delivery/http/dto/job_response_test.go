package dto

import (
	"testing"
	"time"
)

func TestPostedAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"just now", now, "0 minutes ago"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"under an hour", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"under a day", now.Add(-23 * time.Hour), "23 hours ago"},
		{"one day", now.Add(-24 * time.Hour), "1 day ago"},
		{"many days", now.Add(-72 * time.Hour), "3 days ago"},
		{"future clock skew", now.Add(5 * time.Minute), "0 minutes ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PostedAgo(tc.createdAt, now); got != tc.want {
				t.Fatalf("PostedAgo = %q, want %q", got, tc.want)
			}
		})
	}
}
