// Package category defines the fixed weighted KPI taxonomy that entries are
// logged against. The set is static: categories are compiled in, never
// user-created. Edit the table below to match a different KPI structure.
package category

// Category is a single KPI bucket. Weight is an integer percentage; a weight
// of zero marks a qualitative category that is excluded from scored
// summaries.
type Category struct {
	ID     string
	Label  string
	Short  string
	Color  string
	Icon   string
	Weight int
	Desc   string
}

// Unknown is the sentinel returned for category ids that are not in the fixed
// set. Entries carrying such ids stay visible in listings but are omitted
// from per-category groupings and summaries.
var Unknown = Category{
	ID:    "unknown",
	Label: "Uncategorized",
	Short: "Unknown",
	Color: "#6b7280",
	Icon:  "❓",
}

var categories = []Category{
	{
		ID:     "initiative",
		Label:  "Initiative / Innovation / Creativity",
		Short:  "Initiative",
		Color:  "#f59e0b",
		Icon:   "💡",
		Weight: 30,
		Desc:   "Impactful initiatives outside regular assignments that improve team knowledge / system performance / team interaction",
	},
	{
		ID:     "quality",
		Label:  "Quality of Work",
		Short:  "Quality",
		Color:  "#10b981",
		Icon:   "✨",
		Weight: 30,
		Desc:   "Quality of deliverables, minimal rework, impact analysis, future-proof solutions",
	},
	{
		ID:     "throughput",
		Label:  "Throughput / Efficiency",
		Short:  "Throughput",
		Color:  "#3b82f6",
		Icon:   "⚡",
		Weight: 20,
		Desc:   "Speed of task completion without sacrificing quality",
	},
	{
		ID:     "collaboration",
		Label:  "Collaboration / Teamwork",
		Short:  "Collab",
		Color:  "#8b5cf6",
		Icon:   "🤝",
		Weight: 20,
		Desc:   "Participation in discussions, helping others, communication",
	},
	{
		ID:     "leadership",
		Label:  "Leadership / Developing Others",
		Short:  "Leadership",
		Color:  "#ec4899",
		Icon:   "🌱",
		Weight: 0,
		Desc:   "Mentoring, coaching, and developing team members",
	},
	{
		ID:     "other",
		Label:  "Other / General",
		Short:  "Other",
		Color:  "#6b7280",
		Icon:   "📋",
		Weight: 0,
		Desc:   "Other tasks and activities",
	},
}

// Values is the fixed list of qualitative values covered by the evaluation.
// No entries map to these; they are rendered as labeled placeholders.
var Values = []string{
	"Honesty",
	"Boldness",
	"Passion",
	"Positivity",
	"Excellence",
}

// All returns the fixed category set in declared order. Callers must not
// modify the returned slice.
func All() []Category {
	return categories
}

// Of looks up a category by id. It is total: unknown ids return the Unknown
// sentinel rather than an error.
func Of(id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return Unknown
}

// IsKnown reports whether id names a category in the fixed set.
func IsKnown(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Weighted returns the categories with a nonzero weight, in declared order.
func Weighted() []Category {
	var out []Category
	for _, c := range categories {
		if c.Weight > 0 {
			out = append(out, c)
		}
	}
	return out
}

// IDs returns the ids of the fixed set in declared order.
func IDs() []string {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids
}
