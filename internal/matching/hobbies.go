package matching

import "strings"

// Hobby categories give partial credit when two people share an activity
// type without naming the same hobby. Classification is an exact lookup on
// the normalized token; unknown hobbies fall into "other", which never
// counts as a category match.
const (
	categoryActive   = "active"
	categoryCreative = "creative"
	categorySocial   = "social"
	categoryMindful  = "mindful"
	categoryOther    = "other"
)

var hobbyCategories = map[string]string{
	"gaming":    categoryActive,
	"cricket":   categoryActive,
	"cycling":   categoryActive,
	"football":  categoryActive,
	"badminton": categoryActive,
	"gym":       categoryActive,
	"running":   categoryActive,
	"swimming":  categoryActive,
	"hiking":    categoryActive,
	"sports":    categoryActive,

	"painting":    categoryCreative,
	"music":       categoryCreative,
	"writing":     categoryCreative,
	"photography": categoryCreative,
	"drawing":     categoryCreative,
	"crafts":      categoryCreative,
	"dance":       categoryCreative,
	"singing":     categoryCreative,

	"partying": categorySocial,
	"cooking":  categorySocial,
	"travel":   categorySocial,
	"shopping": categorySocial,
	"movies":   categorySocial,
	"dining":   categorySocial,

	"yoga":       categoryMindful,
	"reading":    categoryMindful,
	"meditation": categoryMindful,
	"gardening":  categoryMindful,
	"journaling": categoryMindful,
}

func hobbyCategoryOf(hobby string) string {
	if c, ok := hobbyCategories[strings.ToLower(strings.TrimSpace(hobby))]; ok {
		return c
	}
	return categoryOther
}

// sharedHobbies returns the seeker hobbies that also appear in the
// candidate list, compared case-insensitively, preserving seeker order.
func sharedHobbies(seeker, candidate []string) []string {
	have := make(map[string]struct{}, len(candidate))
	for _, h := range candidate {
		have[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}
	var shared []string
	for _, h := range seeker {
		if _, ok := have[strings.ToLower(strings.TrimSpace(h))]; ok {
			shared = append(shared, h)
		}
	}
	return shared
}
