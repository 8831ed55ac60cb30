package export

import (
	"net/url"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/schedule"
)

// QuickAddBase is Google Calendar's event-creation endpoint.
const QuickAddBase = "https://calendar.google.com/calendar/render"

// ISO basic timestamp at second precision, as the render endpoint expects.
const quickAddStamp = "20060102T150405Z"

// QuickAddLink builds a Google Calendar pre-filled event URL for the first
// subtopic of the roadmap's schedule. The second return is false when the
// schedule has no subtopic entries (the caller treats that as a no-op).
func QuickAddLink(r *domain.Roadmap, start time.Time) (string, bool) {
	if r == nil {
		return "", false
	}

	first, ok := schedule.FirstSubtopic(schedule.Build(r, start))
	if !ok {
		return "", false
	}

	details := ""
	if r.Description != "" {
		details = r.Description + "\n"
	}
	details += Attribution

	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", "Study: "+first.Title)
	v.Set("dates", first.StartDate.UTC().Format(quickAddStamp)+"/"+first.EndDate().UTC().Format(quickAddStamp))
	v.Set("details", details)
	v.Set("location", EventLocation)

	return QuickAddBase + "?" + v.Encode(), true
}
