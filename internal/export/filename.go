package export

// SanitizeStem maps a roadmap title to a filename-safe stem: every
// non-alphanumeric rune becomes an underscore, case is preserved. An empty
// title yields "roadmap".
func SanitizeStem(title string) string {
	if title == "" {
		return "roadmap"
	}
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// PDFFileName returns the download filename for the PDF document.
func PDFFileName(title string) string {
	return SanitizeStem(title) + "_timetable.pdf"
}

// ICSFileName returns the download filename for the calendar feed.
func ICSFileName(title string) string {
	return SanitizeStem(title) + "_schedule.ics"
}
