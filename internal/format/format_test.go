package format

import "testing"

func TestUptime(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{90, "0h1m"},
		{3600, "1h0m"},
		{90000, "1d1h"},
	}

	for _, tc := range cases {
		if got := Uptime(tc.in); got != tc.want {
			t.Fatalf("Uptime(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBytes(t *testing.T) {
	giB := uint64(1024 * 1024 * 1024)
	cases := []struct {
		in   uint64
		want string
	}{
		{512 * 1024 * 1024, "512M"},
		{2 * giB, "2.0G"},
		{1500 * giB, "1T"},
	}

	for _, tc := range cases {
		if got := Bytes(tc.in); got != tc.want {
			t.Fatalf("Bytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
