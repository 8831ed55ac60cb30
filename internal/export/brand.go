package export

// Fixed branding strings shared by the document, calendar feed and
// quick-add renderers. These mirror the platform's letterhead and event
// attribution; changing them changes every export format at once.
const (
	BrandName      = "Menttor"
	BrandTagline   = "Your personal mentor for mastering anything"
	WatermarkText  = "MENTTOR"
	Attribution    = "Created with Menttor - menttor.app"
	EventLocation  = "Your study space"
	OrganizerEmail = "mailto:schedule@menttor.app"
)

// EventCategories is the fixed category triplet attached to every
// calendar event.
var EventCategories = []string{"EDUCATION", "STUDY", "MENTTOR"}

// StudyTips is the fixed closing section of the PDF document.
var StudyTips = []string{
	"Study in focused 25-50 minute blocks with short breaks in between.",
	"Review the previous day's material before starting new subtopics.",
	"Write brief notes in your own words after each study session.",
	"Practice actively: build something small with every new concept.",
	"Keep a consistent daily study time to build the habit.",
	"Rest days are part of the plan - use the buffer day between modules.",
}
