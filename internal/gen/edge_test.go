package gen

import "testing"

func TestNewEdge_Canonical(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		src, dst uint64
	}{
		{"ordered", 1, 2, 1, 2},
		{"swapped", 2, 1, 1, 2},
		{"large", 900, 7, 7, 900},
		{"zero", 5, 0, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEdge(tt.a, tt.b)
			if e.Source != tt.src || e.Destination != tt.dst {
				t.Errorf("NewEdge(%d, %d) = (%d, %d), want (%d, %d)",
					tt.a, tt.b, e.Source, e.Destination, tt.src, tt.dst)
			}
		})
	}
}

func TestNewEdge_UnorderedEquality(t *testing.T) {
	if NewEdge(3, 8) != NewEdge(8, 3) {
		t.Error("(3,8) and (8,3) should be the same canonical edge")
	}
}

func TestEdge_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edge    Edge
		n       uint64
		wantErr bool
	}{
		{"valid", Edge{0, 4}, 5, false},
		{"self_loop", Edge{2, 2}, 5, true},
		{"dest_out_of_range", Edge{0, 5}, 5, true},
		{"source_out_of_range", Edge{7, 9}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edge.Validate(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEdge_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Edge
		want int
	}{
		{"equal", Edge{1, 2}, Edge{1, 2}, 0},
		{"smaller_source", Edge{0, 9}, Edge{1, 2}, -1},
		{"larger_source", Edge{3, 4}, Edge{1, 9}, 1},
		{"same_source_smaller_dest", Edge{1, 2}, Edge{1, 3}, -1},
		{"same_source_larger_dest", Edge{1, 5}, Edge{1, 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
