package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStem(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Intro to C++!", "Intro_to_C___"},
		{"Learn Go", "Learn_Go"},
		{"plain", "plain"},
		{"", "roadmap"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeStem(tt.in), "input %q", tt.in)
	}
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "Learn_Go_timetable.pdf", PDFFileName("Learn Go"))
	assert.Equal(t, "Learn_Go_schedule.ics", ICSFileName("Learn Go"))
	assert.Equal(t, "roadmap_timetable.pdf", PDFFileName(""))
	assert.Equal(t, "roadmap_schedule.ics", ICSFileName(""))
}
