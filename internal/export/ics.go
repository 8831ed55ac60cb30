package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/schedule"
)

// BuildICS renders the roadmap's schedule as an iCalendar text blob with one
// VEVENT per subtopic entry; module and topic marker entries never become
// events. A nil roadmap yields an empty string, never an error.
func BuildICS(r *domain.Roadmap, start time.Time) string {
	if r == nil {
		return ""
	}

	entries := schedule.Build(r, start)
	subs := schedule.Subtopics(entries)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Menttor//Study Schedule//EN")

	now := time.Now().UTC()
	for _, e := range subs {
		ev := cal.AddEvent(uuid.New().String() + "@menttor.app")
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.StartDate.UTC())
		ev.SetEndAt(e.EndDate().UTC())
		ev.SetSummary("Study: " + e.Title)
		ev.SetDescription(eventDescription(r, e))
		ev.SetLocation(EventLocation)
		ev.SetStatus(ics.ObjectStatusTentative)
		ev.SetTimeTransparency(ics.TransparencyOpaque)
		ev.SetOrganizer(OrganizerEmail, ics.WithCN(BrandName))
		ev.SetProperty(ics.ComponentPropertyCategories, strings.Join(EventCategories, ","))
	}

	return cal.Serialize()
}

func eventDescription(r *domain.Roadmap, e domain.ScheduleEntry) string {
	var b strings.Builder
	if e.Description != "" {
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Part of the %q roadmap.\n", r.DisplayTitle())
	b.WriteString(Attribution)
	return b.String()
}
