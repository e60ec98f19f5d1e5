// Package content holds the fixed catalog of activities, quotes and games
// shown by unwind. Nothing here changes after process start.
package content

import (
	"math/rand/v2"
	"slices"
)

// DefaultDuration is substituted for activities without a positive duration.
const DefaultDuration = 60

type (
	// Category is the benefit an activity targets.
	Category string

	// Animation selects the visual shown while an activity plays.
	Animation string

	// Activity is a fixed-duration guided micro-break.
	Activity struct {
		Key         string    `json:"key"`
		Title       string    `json:"title"`
		Duration    int       `json:"duration"`
		Category    Category  `json:"category"`
		Color       string    `json:"color"`
		Animation   Animation `json:"animation"`
		Instruction string    `json:"instruction"`
	}

	// Quote is a short tagged line shown on the inspire view.
	Quote struct {
		Text string `json:"text"`
		Tag  string `json:"tag"`
	}

	// Game is a light browser game listed on the games view.
	Game struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	// Lesson is a one-line tip shown on the explore view.
	Lesson struct {
		Topic string `json:"topic"`
		Tip   string `json:"tip"`
	}
)

const (
	Calm   Category = "Calm"
	Focus  Category = "Focus"
	Energy Category = "Energy"
)

const (
	AnimationPulse    Animation = "pulse"
	AnimationGradient Animation = "gradient"
)

// Categories lists every category in display order.
var Categories = []Category{Calm, Focus, Energy}

// Seconds returns the activity duration, substituting DefaultDuration when
// the stored value is not positive.
func (a Activity) Seconds() int {
	if a.Duration <= 0 {
		return DefaultDuration
	}

	return a.Duration
}

// breathType marks entries that play the breathing pulse. Every other entry
// plays the gradient strip.
const breathType = "breath"

type entry struct {
	key, title  string
	duration    int
	category    Category
	color       string
	kind        string
	instruction string
}

var activities = catalog([]entry{
	{"breath", "Breath Sync", 60, Calm, "#1B9CFC", breathType, "Inhale 4s, hold 2s, exhale 4s."},
	{"ground", "Grounding", 45, Calm, "#20C997", "nature", "Name 3 things you see, 2 you feel, 1 you hear."},
	{"nature", "Nature Loop", 60, Calm, "#34d399", "nature", "Watch the gentle particles drift."},
	{"reframe", "One-Line Reframe", 45, Focus, "#FFA94D", "nature", "Write one helpful reframe in your notes."},
	{"focus", "60s Focus Game", 60, Focus, "#0ea5e9", "nature", "Keep eyes on the moving dot."},
	{"doodle", "Quick Doodle", 30, Energy, "#f59e0b", "nature", "Scribble something fun for 30s."},
})

func catalog(entries []entry) []Activity {
	out := make([]Activity, len(entries))

	for i, e := range entries {
		out[i] = Activity{
			Key:         e.key,
			Title:       e.title,
			Duration:    e.duration,
			Category:    e.category,
			Color:       e.color,
			Animation:   animationFor(e.kind),
			Instruction: e.instruction,
		}
	}

	return out
}

func animationFor(kind string) Animation {
	if kind == breathType {
		return AnimationPulse
	}

	return AnimationGradient
}

// Activities returns a copy of the activity catalog.
func Activities() []Activity {
	return slices.Clone(activities)
}

// Lookup finds an activity by key.
func Lookup(key string) (Activity, bool) {
	i := slices.IndexFunc(activities, func(a Activity) bool {
		return a.Key == key
	})
	if i < 0 {
		return Activity{}, false
	}

	return activities[i], true
}

// ByCategory returns the activities in cat, in catalog order.
func ByCategory(cat Category) []Activity {
	var out []Activity

	for _, a := range activities {
		if a.Category == cat {
			out = append(out, a)
		}
	}

	return out
}

// Recommendations picks n activities for the home view. The first picks
// cover each category once before any category repeats. The same seed always
// yields the same picks.
func Recommendations(n int, seed uint64) []Activity {
	if n <= 0 {
		return nil
	}

	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	groups := make([][]Activity, len(Categories))
	for i, cat := range Categories {
		g := ByCategory(cat)
		r.Shuffle(len(g), func(a, b int) {
			g[a], g[b] = g[b], g[a]
		})

		groups[i] = g
	}

	var out []Activity

	for round := 0; len(out) < n; round++ {
		added := false

		for _, g := range groups {
			if round < len(g) && len(out) < n {
				out = append(out, g[round])
				added = true
			}
		}

		if !added {
			break
		}
	}

	return out
}
