package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	code := func(v uint) *uint { return &v }

	tests := []struct {
		name     string
		statusID *uint
		want     string
	}{
		{name: "no status falls back to blue", statusID: nil, want: "#3788d8"},
		{name: "pending", statusID: code(0), want: "#3788d8"},
		{name: "confirmed", statusID: code(1), want: "#52b21f"},
		{name: "done", statusID: code(2), want: "#595654"},
		{name: "other", statusID: code(3), want: "#de8b44"},
		{name: "cancelled", statusID: code(9), want: "red"},
		{name: "unknown code falls back to blue", statusID: code(42), want: "#3788d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusColor(tt.statusID))
		})
	}
}

func TestEventTitle(t *testing.T) {
	end := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	title := eventTitle(end, "Ayse", "Mehmet", "Yilmaz", "Kontrol")
	assert.Equal(t, " - 14:30  Ayse Mehmet Yilmaz Kontrol", title)
}

func TestEventTitle_EmptyDescription(t *testing.T) {
	end := time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC)

	title := eventTitle(end, "Ayse", "Mehmet", "Yilmaz", "")
	assert.Equal(t, " - 09:05  Ayse Mehmet Yilmaz ", title)
}
