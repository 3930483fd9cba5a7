package ui

import "testing"

func TestProgressBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		want                string
	}{
		{0, 12, 12, "[------------]"},
		{6, 12, 12, "[######------]"},
		{12, 12, 12, "[############]"},
		{20, 12, 4, "[####]"},
		{-1, 0, 1, "[---]"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.value, tc.total, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%d,%d,%d)=%q, want %q", tc.value, tc.total, tc.width, got, tc.want)
		}
	}
}

func TestThousands(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for n, want := range cases {
		if got := Thousands(n); got != want {
			t.Fatalf("Thousands(%d)=%q, want %q", n, got, want)
		}
	}
}
