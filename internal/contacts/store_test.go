package contacts

import (
	"math"
	"testing"
)

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Number: 1, Size: 5}, 0},
		{Page{Number: 3, Size: 5}, 10},
		{Page{Number: 0, Size: 5}, 0},
		{Page{Number: 3689348814741910325, Size: 5}, math.MaxInt},
		{Page{Number: math.MaxInt, Size: 2}, math.MaxInt},
		{Page{Number: math.MaxInt, Size: 1}, math.MaxInt - 1},
	}
	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("%+v.Offset() = %d, want %d", tt.page, got, tt.want)
		}
	}
}
