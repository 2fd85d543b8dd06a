package fontsize

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 7, want: 8},
		{in: 8, want: 8},
		{in: 15, want: 15},
		{in: 72, want: 72},
		{in: 100, want: 72},
		{in: -3, want: 8},
		{in: 13.7, want: 13.7},
	}

	for _, tc := range cases {
		if got := Clamp(tc.in); got != tc.want {
			t.Fatalf("Clamp(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got, want := Format(17), "17px"; got != want {
		t.Fatalf("Format(17): got %q, want %q", got, want)
	}
	if got, want := Format(13.5), "13.5px"; got != want {
		t.Fatalf("Format(13.5): got %q, want %q", got, want)
	}
	if got, want := FormatNumber(72), "72"; got != want {
		t.Fatalf("FormatNumber(72): got %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "15px", want: 15, wantOK: true},
		{in: "8px", want: 8, wantOK: true},
		{in: "13.5px", want: 13.5, wantOK: true},
		{in: "", wantOK: false},
		{in: "px", wantOK: false},
		{in: "15", wantOK: false},
		{in: "-5px", wantOK: false},
		{in: "1e2px", wantOK: false},
		{in: "15em", wantOK: false},
		{in: " 15px", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("Parse(%q): ok %v, want %v", tc.in, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("Parse(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
