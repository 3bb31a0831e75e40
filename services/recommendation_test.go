package services

import (
	"fmt"
	"testing"

	courseModels "olms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogCourse(id uint, name, category, level string) courseModels.Course {
	c := courseModels.Course{Name: name, Category: category, Level: level, Difficulty: 1}
	c.ID = id
	return c
}

func TestNormalizeCourseDefaults(t *testing.T) {
	c := NormalizeCourse(courseModels.Course{Name: "Bare"})

	assert.Equal(t, "General", c.Category)
	assert.Equal(t, courseModels.LevelBeginner, c.Level)
	assert.Equal(t, 1, c.Difficulty)
}

func TestAnalyzeLearningProfileEmpty(t *testing.T) {
	profile := AnalyzeLearningProfile(nil, nil)

	assert.Equal(t, courseModels.LevelBeginner, profile.PreferredLevel)
	assert.Empty(t, profile.PreferredCategories)
	assert.Zero(t, profile.CompletionRate)
}

func TestAnalyzeLearningProfilePreferences(t *testing.T) {
	completed := []courseModels.Course{
		catalogCourse(1, "Go Basics", "Programming", courseModels.LevelBeginner),
		catalogCourse(2, "Go Web", "Programming", courseModels.LevelIntermediate),
		catalogCourse(3, "SQL Basics", "Databases", courseModels.LevelIntermediate),
		catalogCourse(4, "Networking", "Networks", courseModels.LevelIntermediate),
		catalogCourse(5, "Crypto", "Security", courseModels.LevelIntermediate),
	}
	enrolled := []courseModels.Course{
		catalogCourse(6, "Linux", "Systems", courseModels.LevelBeginner),
	}

	profile := AnalyzeLearningProfile(enrolled, completed)

	assert.Equal(t, courseModels.LevelIntermediate, profile.PreferredLevel)
	// Top 3 by frequency, first-seen order breaking ties
	assert.Equal(t, []string{"Programming", "Databases", "Networks"}, profile.PreferredCategories)
	assert.InDelta(t, 5.0/6.0, profile.CompletionRate, 1e-9)
}

func TestAnalyzeLearningProfileLevelTieKeepsFirstSeen(t *testing.T) {
	completed := []courseModels.Course{
		catalogCourse(1, "A", "X", courseModels.LevelAdvanced),
		catalogCourse(2, "B", "Y", courseModels.LevelBeginner),
	}

	profile := AnalyzeLearningProfile(nil, completed)

	assert.Equal(t, courseModels.LevelAdvanced, profile.PreferredLevel)
}

func TestRecommendExcludesTakenCourses(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "A", "Programming", courseModels.LevelBeginner),
		catalogCourse(2, "B", "Programming", courseModels.LevelBeginner),
		catalogCourse(3, "C", "Programming", courseModels.LevelBeginner),
	}
	engine := NewRecommendationEngine(catalog)

	recommendations := engine.Recommend(DefaultProfile(), []uint{2}, []uint{1}, 10)

	require.Len(t, recommendations, 1)
	assert.Equal(t, uint(3), recommendations[0].Course.ID)
}

func TestRecommendScoreScenario(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Go Basics", "Programming", courseModels.LevelBeginner),
		catalogCourse(2, "Pentesting", "Security", courseModels.LevelAdvanced),
	}
	completed := []courseModels.Course{catalog[0]}

	engine := NewRecommendationEngine(catalog)
	profile := AnalyzeLearningProfile(nil, completed)

	require.Equal(t, courseModels.LevelBeginner, profile.PreferredLevel)
	require.Equal(t, []string{"Programming"}, profile.PreferredCategories)

	recommendations := engine.Recommend(profile, nil, []uint{1}, 5)

	require.Len(t, recommendations, 1)
	assert.Equal(t, uint(2), recommendations[0].Course.ID)
	// level 0.3*0.30 + category 0.5*0.25 + placeholders 0.6*0.20 + 0.7*0.15 + 0.8*0.10
	assert.InDelta(t, 0.52, recommendations[0].Score, 1e-9)
}

func TestRecommendScoreBounds(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "A", "Programming", courseModels.LevelBeginner),
		catalogCourse(2, "B", "Security", courseModels.LevelIntermediate),
		catalogCourse(3, "C", "Databases", courseModels.LevelAdvanced),
		catalogCourse(4, "D", "", ""),
	}
	engine := NewRecommendationEngine(catalog)

	profiles := []LearningProfile{
		{},
		DefaultProfile(),
		{PreferredLevel: courseModels.LevelBeginner, PreferredCategories: []string{"Programming"}, CompletionRate: 1},
		{PreferredLevel: courseModels.LevelAdvanced, PreferredCategories: []string{"Security", "Databases"}, CompletionRate: 0.5},
	}

	for _, profile := range profiles {
		for _, rec := range engine.Recommend(profile, nil, nil, 10) {
			assert.GreaterOrEqual(t, rec.Score, 0.0)
			assert.LessOrEqual(t, rec.Score, 1.0)
		}
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	var catalog []courseModels.Course
	for i := 1; i <= 8; i++ {
		catalog = append(catalog, catalogCourse(uint(i), fmt.Sprintf("Course %d", i), "General", courseModels.LevelBeginner))
	}
	engine := NewRecommendationEngine(catalog)

	assert.Len(t, engine.Recommend(DefaultProfile(), nil, nil, 0), DefaultRecommendationLimit)
	assert.Len(t, engine.Recommend(DefaultProfile(), nil, nil, 3), 3)
	assert.Len(t, engine.Recommend(DefaultProfile(), nil, nil, 20), 8)
}

func TestRecommendSortedDescendingStable(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Advanced Crypto", "Security", courseModels.LevelAdvanced),
		catalogCourse(2, "Go Basics", "Programming", courseModels.LevelBeginner),
		catalogCourse(3, "Linux Basics", "Systems", courseModels.LevelBeginner),
		catalogCourse(4, "Go Web", "Programming", courseModels.LevelIntermediate),
	}
	engine := NewRecommendationEngine(catalog)
	profile := LearningProfile{
		PreferredLevel:      courseModels.LevelBeginner,
		PreferredCategories: []string{"Programming"},
	}

	recommendations := engine.Recommend(profile, nil, nil, 10)

	require.Len(t, recommendations, 4)
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].Score, recommendations[i].Score)
	}

	// Courses 2 and 3 differ only in category (1.0 vs 0.5); 2 wins.
	assert.Equal(t, uint(2), recommendations[0].Course.ID)
}

func TestRecommendEqualScoresKeepCatalogOrder(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(7, "First", "General", courseModels.LevelBeginner),
		catalogCourse(3, "Second", "General", courseModels.LevelBeginner),
		catalogCourse(9, "Third", "General", courseModels.LevelBeginner),
	}
	engine := NewRecommendationEngine(catalog)

	recommendations := engine.Recommend(DefaultProfile(), nil, nil, 10)

	require.Len(t, recommendations, 3)
	assert.Equal(t, uint(7), recommendations[0].Course.ID)
	assert.Equal(t, uint(3), recommendations[1].Course.ID)
	assert.Equal(t, uint(9), recommendations[2].Course.ID)
}

func TestRecommendationReasoning(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Go Web", "Programming", courseModels.LevelBeginner),
		catalogCourse(2, "Crypto", "Security", courseModels.LevelAdvanced),
	}
	engine := NewRecommendationEngine(catalog)

	matched := engine.Recommend(LearningProfile{
		PreferredLevel:      courseModels.LevelBeginner,
		PreferredCategories: []string{"Programming"},
		CompletionRate:      0.9,
	}, nil, nil, 10)

	require.Len(t, matched, 2)
	assert.Equal(t,
		"Matches your preferred Beginner level and Similar to your favorite Programming courses and Based on your excellent completion rate",
		matched[0].Reasoning)
	assert.Equal(t, "Based on your excellent completion rate", matched[1].Reasoning)

	unmatched := engine.Recommend(LearningProfile{
		PreferredLevel:      courseModels.LevelIntermediate,
		PreferredCategories: []string{"Databases"},
	}, nil, nil, 10)

	require.Len(t, unmatched, 2)
	for _, rec := range unmatched {
		assert.Equal(t, "New course that might interest you", rec.Reasoning)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := NewRecommendationEngine(nil)

	assert.Empty(t, engine.Recommend(DefaultProfile(), nil, nil, 5))
}
