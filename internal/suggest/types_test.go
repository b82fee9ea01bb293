package suggest

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		count   int
		margin  int
		fileLen int
		want    Window
		ok      bool
	}{
		{"interior range", 10, 11, 3, 100, Window{7, 23}, true},
		{"clamp at file start", 1, 5, 3, 100, Window{1, 8}, true},
		{"clamp at file end", 95, 6, 3, 100, Window{92, 100}, true},
		{"clamp both sides", 1, 100, 10, 100, Window{1, 100}, true},
		{"no margin", 10, 2, 0, 100, Window{10, 11}, true},
		{"single line", 42, 1, 0, 100, Window{42, 42}, true},
		{"pure insertion with margin", 40, 0, 3, 100, Window{37, 42}, true},
		{"pure insertion no margin", 40, 0, 0, 100, Window{}, false},
		{"empty file", 1, 1, 3, 0, Window{}, false},
		{"start past file end", 50, 2, 3, 40, Window{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Expand(tt.start, tt.count, tt.margin, tt.fileLen)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("window = %+v, want %+v", got, tt.want)
			}
		})
	}
}
