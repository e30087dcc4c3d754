package pdfdoc

import "testing"

func TestDPIForScale(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  int
	}{
		{name: "default on zero", scale: 0, want: 144},
		{name: "default on negative", scale: -1, want: 144},
		{name: "identity", scale: 1, want: 72},
		{name: "double", scale: 2, want: 144},
		{name: "fractional", scale: 1.5, want: 108},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDocument(nil, tt.scale)
			if got := d.DPI(); got != tt.want {
				t.Errorf("DPI() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.pdf", 2); err == nil {
		t.Fatal("expected error opening nonexistent file")
	}
}
