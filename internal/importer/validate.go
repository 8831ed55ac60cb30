package importer

import (
	"fmt"

	"github.com/menttor/menttor-cli/internal/domain"
)

// ValidateDocument checks a parsed roadmap document before conversion.
// Returns every validation error found, not just the first. Missing titles
// and unparsable estimates are tolerated (defaults apply downstream); only
// structurally useless input is rejected.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc == nil {
		return []error{fmt.Errorf("document is empty")}
	}
	if len(doc.Modules) == 0 {
		errs = append(errs, fmt.Errorf("no modules found in roadmap"))
	}
	if doc.TimeUnit != "" && !domain.ValidTimeUnits[doc.TimeUnit] {
		errs = append(errs, fmt.Errorf("time_unit: unknown unit %q", doc.TimeUnit))
	}

	for mi, m := range doc.Modules {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("modules[%d]: name is required", mi))
		}
		for ti, t := range m.Topics {
			if t.Name == "" {
				errs = append(errs, fmt.Errorf("modules[%d].topics[%d]: name is required", mi, ti))
			}
			for si, s := range t.Subtopics {
				if s.Title == "" {
					errs = append(errs, fmt.Errorf("modules[%d].topics[%d].subtopics[%d]: title is required", mi, ti, si))
				}
			}
		}
	}

	return errs
}
