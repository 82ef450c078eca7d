package utils

import "testing"

func TestPageParams(t *testing.T) {
	tests := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"2", "1000", 2, 100},
	}
	for _, tt := range tests {
		page, limit := PageParams(tt.page, tt.limit, 10)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("PageParams(%q, %q) = %d, %d; want %d, %d", tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 2, 13},
	}
	for _, tt := range tests {
		p := NewPagination(1, tt.limit, tt.total)
		if p.TotalPages != tt.wantPages {
			t.Errorf("total=%d limit=%d: pages = %d, want %d", tt.total, tt.limit, p.TotalPages, tt.wantPages)
		}
	}
	if got := Offset(3, 20); got != 40 {
		t.Errorf("Offset(3, 20) = %d", got)
	}
}
