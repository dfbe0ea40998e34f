// Package types provides type definitions for structured data used throughout the readiness-check system.
package types

// Theme is one of the six fixed life-readiness categories.
type Theme string

// The six themes, in declared order. Ranking ties are broken by this order.
const (
	ThemePurpose    Theme = "Purpose & Identity"
	ThemeSocial     Theme = "Social Health & Community Connection"
	ThemeHealth     Theme = "Health & Vitality"
	ThemeLearning   Theme = "Learning & Growth"
	ThemeAdventure  Theme = "Adventure & Exploration"
	ThemeGivingBack Theme = "Giving Back"
)

// Themes lists every theme in declared order.
var Themes = []Theme{
	ThemePurpose,
	ThemeSocial,
	ThemeHealth,
	ThemeLearning,
	ThemeAdventure,
	ThemeGivingBack,
}

// RatingMax is the upper bound of the slider scale (inclusive). Sliders run 0..RatingMax.
const RatingMax = 10

// QuestionsPerTheme is the fixed number of prompts per theme.
const QuestionsPerTheme = 4

// Questions maps each theme to its ordered, fixed question prompts.
var Questions = map[Theme][]string{
	ThemePurpose: {
		"I feel confident about who I am beyond my work role.",
		"I have a clear sense of purpose for my post-work life.",
		"I rarely feel anxious or lost without my daily work routine.",
		"I can reflect on my career with clarity and without regret.",
	},
	ThemeSocial: {
		"I have strong relationships outside of work.",
		"I actively nurture friendships and community connections.",
		"I feel comfortable reaching out to new people.",
		"Loneliness is not a concern for me right now.",
	},
	ThemeHealth: {
		"I maintain regular physical activity.",
		"My mental and emotional wellbeing feels stable.",
		"I prioritize sleep, nutrition, and stress management.",
		"I have no major health barriers to exploring new activities.",
	},
	ThemeLearning: {
		"I actively pursue new knowledge or skills.",
		"I enjoy learning challenges and have a growth mindset.",
		"I make time for reading, courses, or hobbies that expand my mind.",
		"Cognitive sharpness is a priority in my daily life.",
	},
	ThemeAdventure: {
		"I try new places, experiences, or micro-adventures regularly.",
		"I'm willing to step out of my comfort zone in small, safe ways.",
		"I have a list of things I'm curious to explore.",
		"I can plan and take short adventures without much friction.",
	},
	ThemeGivingBack: {
		"I find ways to contribute to others or my community.",
		"I see how my experience can be useful to someone else.",
		"I'm open to small acts of service that fit my energy and schedule.",
		"I have an idea for a tiny contribution this month.",
	},
}

// Labels maps each theme to its abbreviated chart label.
var Labels = map[Theme]string{
	ThemePurpose:    "Identity",
	ThemeSocial:     "Connection",
	ThemeHealth:     "Vitality",
	ThemeLearning:   "Growth",
	ThemeAdventure:  "Adventure",
	ThemeGivingBack: "Contribution",
}

// Label returns the abbreviated chart label for a theme, falling back to the
// full theme name when no abbreviation is configured.
func Label(t Theme) string {
	if label, ok := Labels[t]; ok {
		return label
	}
	return string(t)
}
