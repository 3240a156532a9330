package analysis

import "strings"

// KeywordRule classifies a transcript line by lowercase substring match.
// A line matches when it contains any Include keyword and no Suppress keyword.
type KeywordRule struct {
	Include  []string
	Suppress []string
}

// Classify reports whether the lowercase line carries one of the include
// keywords and whether a suppress keyword vetoes it
func (r KeywordRule) Classify(lower string) (cued, suppressed bool) {
	for _, kw := range r.Include {
		if strings.Contains(lower, kw) {
			cued = true
			break
		}
	}
	if !cued {
		return false, false
	}
	for _, kw := range r.Suppress {
		if strings.Contains(lower, kw) {
			return true, true
		}
	}
	return true, false
}

// Matches reports whether the lowercase line is cued and not suppressed
func (r KeywordRule) Matches(lower string) bool {
	cued, suppressed := r.Classify(lower)
	return cued && !suppressed
}

// RoleRule maps a speaker label containing Marker to an assignee
type RoleRule struct {
	Marker   string
	Assignee string
}

// Rules is the full heuristic vocabulary used by the extractor
type Rules struct {
	Decisions   KeywordRule
	ActionItems KeywordRule
	// Roles are checked in order; the first match wins
	Roles []RoleRule
}

var (
	DecisionRules = KeywordRule{
		Include: []string{
			"decision made",
			"decided to",
			"decision",
			"mark it as",
			"let's make sure",
			"let's add",
		},
		Suppress: []string{
			"decision owners",
			"decisions later",
		},
	}

	ActionItemRules = KeywordRule{
		Include: []string{
			"i'll",
			"i will",
			"going to",
			"let's",
			"need to",
			"make sure",
			"we need",
			"should ",
		},
		Suppress: []string{
			"let's close",
			"let's take that offline",
			"logging off",
		},
	}

	RoleRules = []RoleRule{
		{Marker: "Engineer", Assignee: "Engineering Team"},
		{Marker: "PM", Assignee: "Project Manager"},
		{Marker: "QA", Assignee: "QA Team"},
		{Marker: "Designer", Assignee: "Design Team"},
		{Marker: "Marketing", Assignee: "Marketing Team"},
		{Marker: "Product", Assignee: "Product Lead"},
		{Marker: "Data", Assignee: "Data Team"},
	}
)

// DefaultRules returns the built-in vocabulary
func DefaultRules() Rules {
	return Rules{
		Decisions:   DecisionRules,
		ActionItems: ActionItemRules,
		Roles:       RoleRules,
	}
}

// Assignee resolves a speaker label to an assignee. Matching is case
// sensitive; unmatched speakers are returned verbatim.
func (r Rules) Assignee(speaker string) string {
	for _, role := range r.Roles {
		if strings.Contains(speaker, role.Marker) {
			return role.Assignee
		}
	}
	return speaker
}
