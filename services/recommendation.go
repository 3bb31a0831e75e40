package services

import (
	"fmt"
	"sort"
	"strings"

	courseModels "olms/models/course"
)

// DefaultRecommendationLimit is used when the caller passes limit <= 0
const DefaultRecommendationLimit = 5

// Scoring weights; they sum to 1.0 so the final score stays in [0,1]
const (
	levelWeight       = 0.30
	categoryWeight    = 0.25
	similarityWeight  = 0.20
	popularityWeight  = 0.15
	progressionWeight = 0.10
)

// Placeholder terms for factors not computed yet. Named so a real
// similarity/popularity/progression computation can replace them
// without touching the weighting.
const (
	similarityScore  = 0.6
	popularityScore  = 0.7
	progressionScore = 0.8
)

// LearningProfile summarises a student's level/category preferences and
// completion behaviour. Derived per request, never persisted.
type LearningProfile struct {
	PreferredLevel      string   `json:"preferred_level"`
	PreferredCategories []string `json:"preferred_categories"`
	CompletionRate      float64  `json:"completion_rate"`
}

// DefaultProfile is the degraded profile used when inference has
// nothing to work with
func DefaultProfile() LearningProfile {
	return LearningProfile{
		PreferredLevel:      courseModels.LevelBeginner,
		PreferredCategories: []string{"General"},
	}
}

// Recommendation is one scored catalog course with a human-readable
// rationale. Recomputed per request, never persisted.
type Recommendation struct {
	Course    courseModels.Course `json:"course"`
	Score     float64             `json:"score"`
	Reasoning string              `json:"reasoning"`
}

// RecommendationEngine scores catalog courses against a student's
// learning profile. Construct one per request with the catalog
// snapshot; it holds no store reference and is safe to use
// concurrently for different students.
type RecommendationEngine struct {
	catalog []courseModels.Course
}

// NewRecommendationEngine builds an engine over a catalog snapshot.
// Courses are normalised once here: missing category becomes "General",
// missing level "Beginner", zero difficulty 1. Scoring never branches
// on representation again.
func NewRecommendationEngine(catalog []courseModels.Course) *RecommendationEngine {
	normalized := make([]courseModels.Course, len(catalog))
	for i, c := range catalog {
		normalized[i] = NormalizeCourse(c)
	}
	return &RecommendationEngine{catalog: normalized}
}

// NormalizeCourse fills defaulted optional course fields
func NormalizeCourse(c courseModels.Course) courseModels.Course {
	if c.Category == "" {
		c.Category = "General"
	}
	if c.Level == "" {
		c.Level = courseModels.LevelBeginner
	}
	if c.Difficulty == 0 {
		c.Difficulty = 1
	}
	return c
}

// Recommend returns up to limit not-yet-taken catalog courses, scored
// and sorted descending. Ties keep catalog order. It never fails: an
// empty catalog or a defaulted profile just yields fewer (or no)
// recommendations.
func (e *RecommendationEngine) Recommend(profile LearningProfile, enrolledIDs, completedIDs []uint, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	taken := make(map[uint]bool, len(enrolledIDs)+len(completedIDs))
	for _, id := range enrolledIDs {
		taken[id] = true
	}
	for _, id := range completedIDs {
		taken[id] = true
	}

	recommendations := make([]Recommendation, 0, len(e.catalog))
	for _, c := range e.catalog {
		if taken[c.ID] {
			continue // skip already taken courses
		}
		recommendations = append(recommendations, Recommendation{
			Course:    c,
			Score:     e.scoreCourse(c, profile),
			Reasoning: e.recommendationReason(c, profile),
		})
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}

// scoreCourse computes the weighted recommendation score in [0,1]
func (e *RecommendationEngine) scoreCourse(c courseModels.Course, profile LearningProfile) float64 {
	score := levelMatchScore(c.Level, profile.PreferredLevel) * levelWeight
	score += categoryMatchScore(c.Category, profile.PreferredCategories) * categoryWeight
	score += similarityScore * similarityWeight
	score += popularityScore * popularityWeight
	score += progressionScore * progressionWeight

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func levelMatchScore(courseLevel, preferredLevel string) float64 {
	switch {
	case courseLevel == preferredLevel:
		return 1.0
	case courseLevel == courseModels.LevelIntermediate && preferredLevel == courseModels.LevelBeginner:
		return 0.7
	case courseLevel == courseModels.LevelAdvanced &&
		(preferredLevel == courseModels.LevelBeginner || preferredLevel == courseModels.LevelIntermediate):
		return 0.3
	}
	return 0.0
}

func categoryMatchScore(category string, preferredCategories []string) float64 {
	if len(preferredCategories) == 0 {
		return 0.3 // no signal yet, mild default for new categories
	}
	for _, preferred := range preferredCategories {
		if category == preferred {
			return 1.0
		}
	}
	return 0.5
}

// recommendationReason builds the human-readable rationale string
func (e *RecommendationEngine) recommendationReason(c courseModels.Course, profile LearningProfile) string {
	var reasons []string

	if c.Level == profile.PreferredLevel {
		reasons = append(reasons, fmt.Sprintf("Matches your preferred %s level", c.Level))
	}
	if categoryMatchScore(c.Category, profile.PreferredCategories) == 1.0 {
		reasons = append(reasons, fmt.Sprintf("Similar to your favorite %s courses", c.Category))
	}
	if profile.CompletionRate > 0.7 {
		reasons = append(reasons, "Based on your excellent completion rate")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "New course that might interest you")
	}

	return strings.Join(reasons, " and ")
}

// AnalyzeLearningProfile derives a student's learning profile from the
// courses they have enrolled in and completed. With no completed
// courses the profile stays at Beginner with no category preferences
// and a zero completion rate.
func AnalyzeLearningProfile(enrolled, completed []courseModels.Course) LearningProfile {
	profile := LearningProfile{
		PreferredLevel:      courseModels.LevelBeginner,
		PreferredCategories: []string{},
	}
	if len(completed) == 0 {
		return profile
	}

	levels := make([]string, 0, len(completed))
	categories := make([]string, 0, len(completed))
	for _, c := range completed {
		c = NormalizeCourse(c)
		levels = append(levels, c.Level)
		categories = append(categories, c.Category)
	}

	profile.PreferredLevel = modeOf(levels)
	profile.PreferredCategories = topCategories(categories, 3)
	if len(profile.PreferredCategories) == 0 {
		profile.PreferredCategories = []string{"General"}
	}

	total := len(enrolled) + len(completed)
	if total > 0 {
		profile.CompletionRate = float64(len(completed)) / float64(total)
	}

	return profile
}

// modeOf returns the most frequent value; ties go to the value seen
// first
func modeOf(values []string) string {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := courseModels.LevelBeginner
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// topCategories returns up to n categories by frequency, ignoring
// empty values; ties keep first-seen order
func topCategories(categories []string, n int) []string {
	counts := make(map[string]int, len(categories))
	var order []string
	for _, c := range categories {
		if c == "" {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
