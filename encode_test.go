package ibft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIP(t *testing.T) {
	for _, tt := range []struct {
		in     string
		want   [16]byte
		wantOK bool
	}{
		{
			in:     "192.168.1.10",
			want:   [16]byte{10: 0xff, 11: 0xff, 12: 0xc0, 13: 0xa8, 14: 0x01, 15: 0x0a},
			wantOK: true,
		},
		{
			in:     " 10.0.0.5/24",
			want:   [16]byte{10: 0xff, 11: 0xff, 12: 10, 13: 0, 14: 0, 15: 5},
			wantOK: true,
		},
		{
			// oversized groups keep their low 8 bits
			in:     "300.1.1.1",
			want:   [16]byte{10: 0xff, 11: 0xff, 12: 0x2c, 13: 1, 14: 1, 15: 1},
			wantOK: true,
		},
		{
			in:     "fe80:0:0:0:0:0:0:1",
			want:   [16]byte{0: 0xfe, 1: 0x80, 15: 0x01},
			wantOK: true,
		},
		{
			in: "2001:DB8:0:0:8:800:200C:417A",
			want: [16]byte{
				0x20, 0x01, 0x0d, 0xb8, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x08, 0x08, 0x00, 0x20, 0x0c, 0x41, 0x7a,
			},
			wantOK: true,
		},
		{in: "not-an-ip"},
		{in: "::1"},
		{in: "1.2.3"},
		{in: "1:2:3:4:5:6:7"},
		{in: ""},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseIP(tt.in)
			if ok != tt.wantOK {
				t.Errorf("ParseIP(%q): ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseIP(%q): diff (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseMAC(t *testing.T) {
	for _, tt := range []struct {
		in     string
		want   [6]byte
		wantOK bool
	}{
		{"aa:bb:cc:dd:ee:ff", [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, true},
		{"0:1b:21:3c:9d:F8", [6]byte{0x00, 0x1b, 0x21, 0x3c, 0x9d, 0xf8}, true},
		{"aa:bb:cc:dd:ee:ff:00", [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, true},
		{"aa:bb", [6]byte{}, false},
		{"aa-bb-cc-dd-ee-ff", [6]byte{}, false},
		{"aa:bb:cc:dd:ee:", [6]byte{}, false},
		{"", [6]byte{}, false},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMAC(tt.in)
			if ok != tt.wantOK {
				t.Errorf("ParseMAC(%q): ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseMAC(%q) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUint(t *testing.T) {
	for _, tt := range []struct {
		in     string
		bits   uint
		want   uint64
		wantOK bool
	}{
		{"24", 8, 24, true},
		{"300", 8, 44, true},
		{" 7", 8, 7, true},
		{"+24", 8, 24, true},
		{"+-1", 8, 0, false},
		{"3260abc", 16, 3260, true},
		{"65537", 16, 1, true},
		{"18446744073709551615", 64, 18446744073709551615, true},
		{"18446744073709551616", 64, 0, false},
		{"-1", 16, 0, false},
		{"x", 8, 0, false},
		{"", 8, 0, false},
	} {
		got, ok := parseUint(tt.bits)(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseUint(%d)(%q) = %d, %v, want %d, %v", tt.bits, tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
