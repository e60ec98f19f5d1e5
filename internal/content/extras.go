package content

import "slices"

// DefaultTag labels quotes that carry no tag.
const DefaultTag = "Calm"

var quotes = []Quote{
	{Text: "Tiny steps still move you forward.", Tag: "Motivational"},
	{Text: "Like the ocean, thoughts ebb and flow.", Tag: "Calm"},
	{Text: "Smile at the next small thing you see.", Tag: "Funny"},
}

var games = []Game{
	{Title: "Calm Puzzle", URL: "https://play2048.co/"},
	{Title: "Zen Dots", URL: "https://chromedino.com/"},
	{Title: "Gentle Tetris", URL: "https://tetris.com/play-tetris"},
}

var lessons = []Lesson{
	{Topic: "Psychology", Tip: "Name your feeling to tame it."},
	{Topic: "Fitness", Tip: "30s wall-sit to boost energy."},
	{Topic: "Sleep", Tip: "Dim lights 1 hour before bed."},
	{Topic: "Productivity", Tip: "Turn off notifications for 25 minutes."},
}

// Label returns the quote tag, or DefaultTag when it is empty.
func (q Quote) Label() string {
	if q.Tag == "" {
		return DefaultTag
	}

	return q.Tag
}

// Quotes returns a copy of the quote list.
func Quotes() []Quote {
	return slices.Clone(quotes)
}

// QuoteAt returns the quote at index i, wrapping around the list.
func QuoteAt(i int) Quote {
	n := len(quotes)

	return quotes[((i%n)+n)%n]
}

// Games returns a copy of the game list.
func Games() []Game {
	return slices.Clone(games)
}

// Lessons returns a copy of the micro-lesson list.
func Lessons() []Lesson {
	return slices.Clone(lessons)
}
