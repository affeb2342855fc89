package hostinfo

import (
	"runtime"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "full",
			info: Info{Model: "Ryzen 7", GHz: 3.8, Logical: 16, TotalRAM: 32 << 30},
			want: `cpu="Ryzen 7" threads=16 ghz=3.80 ram=32.0GiB`,
		},
		{
			name: "no clock or memory",
			info: Info{Model: "arm64", Logical: 4},
			want: `cpu="arm64" threads=4`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeFallbacks(t *testing.T) {
	info := Describe()
	if info.Logical <= 0 {
		t.Fatalf("Logical = %d, want > 0", info.Logical)
	}
	if info.Model == "" {
		t.Fatalf("Model is empty, want at least %q", runtime.GOARCH)
	}
}
