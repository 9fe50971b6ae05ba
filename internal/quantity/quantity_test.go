package quantity

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"100", 100, false},
		{"1k", 1000, false},
		{"2K", 2000, false},
		{"2M", 2_000_000, false},
		{"1G", 1_000_000_000, false},
		{"64Ki", 65536, false},
		{"1Mi", 1048576, false},
		{" 10 ", 10, false},
		{"", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
