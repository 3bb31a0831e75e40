package services

import (
	"testing"

	courseModels "olms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentLevel(t *testing.T) {
	assert.Equal(t, courseModels.LevelBeginner, StudentLevel(nil))

	assert.Equal(t, courseModels.LevelIntermediate, StudentLevel([]courseModels.Course{
		catalogCourse(1, "A", "X", courseModels.LevelBeginner),
		catalogCourse(2, "B", "X", courseModels.LevelIntermediate),
	}))

	assert.Equal(t, courseModels.LevelAdvanced, StudentLevel([]courseModels.Course{
		catalogCourse(1, "A", "X", courseModels.LevelBeginner),
		catalogCourse(2, "B", "X", courseModels.LevelAdvanced),
		catalogCourse(3, "C", "X", courseModels.LevelIntermediate),
	}))
}

func TestPlanPathUnknownTarget(t *testing.T) {
	engine := NewRecommendationEngine([]courseModels.Course{
		catalogCourse(1, "A", "Security", courseModels.LevelBeginner),
	})

	assert.Empty(t, engine.PlanPath(99, nil))
}

func TestPlanPathBeginnerGetsPrerequisites(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Security Fundamentals", "Security", courseModels.LevelBeginner),
		catalogCourse(2, "Network Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(3, "Web Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(4, "Crypto Theory", "Security", courseModels.LevelIntermediate),
		catalogCourse(5, "Exploit Development", "Security", courseModels.LevelAdvanced),
		catalogCourse(6, "Go Web", "Programming", courseModels.LevelIntermediate),
	}
	engine := NewRecommendationEngine(catalog)

	path := engine.PlanPath(5, nil)

	// First two Intermediate Security courses in catalog order, target last
	require.Len(t, path, 3)
	assert.Equal(t, uint(2), path[0].ID)
	assert.Equal(t, uint(3), path[1].ID)
	assert.Equal(t, uint(5), path[2].ID)
}

func TestPlanPathIntermediateTargetAppearsOnce(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Network Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(2, "Web Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(3, "Crypto Theory", "Security", courseModels.LevelIntermediate),
	}
	engine := NewRecommendationEngine(catalog)

	path := engine.PlanPath(2, nil)

	// The target is never its own prerequisite
	require.Len(t, path, 3)
	assert.Equal(t, uint(1), path[0].ID)
	assert.Equal(t, uint(3), path[1].ID)
	assert.Equal(t, uint(2), path[2].ID)

	seen := 0
	for _, c := range path {
		if c.ID == 2 {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestPlanPathTargetAlwaysLast(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Network Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(2, "Exploit Development", "Security", courseModels.LevelAdvanced),
	}
	engine := NewRecommendationEngine(catalog)

	path := engine.PlanPath(2, nil)

	require.NotEmpty(t, path)
	assert.Equal(t, uint(2), path[len(path)-1].ID)
}

func TestPlanPathSkipsPrerequisitesForExperiencedStudents(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Network Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(2, "Exploit Development", "Security", courseModels.LevelAdvanced),
	}
	engine := NewRecommendationEngine(catalog)
	completed := []courseModels.Course{
		catalogCourse(3, "Old Course", "Systems", courseModels.LevelIntermediate),
	}

	path := engine.PlanPath(2, completed)

	require.Len(t, path, 1)
	assert.Equal(t, uint(2), path[0].ID)
}

func TestPlanPathBeginnerTargetNeedsNoPrerequisites(t *testing.T) {
	catalog := []courseModels.Course{
		catalogCourse(1, "Network Security", "Security", courseModels.LevelIntermediate),
		catalogCourse(2, "Security Fundamentals", "Security", courseModels.LevelBeginner),
	}
	engine := NewRecommendationEngine(catalog)

	path := engine.PlanPath(2, nil)

	require.Len(t, path, 1)
	assert.Equal(t, uint(2), path[0].ID)
}

func TestInsights(t *testing.T) {
	engine := NewRecommendationEngine([]courseModels.Course{
		catalogCourse(1, "Exploit Development", "Security", courseModels.LevelAdvanced),
		catalogCourse(2, "Go Basics", "Programming", courseModels.LevelBeginner),
	})

	insights, ok := engine.Insights(1)
	require.True(t, ok)
	assert.Equal(t, "This Advanced level course is suitable for experienced students looking to master the topic", insights.DifficultyAnalysis)
	assert.Equal(t, "8 weeks (estimated)", insights.EstimatedCompletionTime)
	assert.Equal(t, "Strong foundation in Security required", insights.Prerequisites)
	assert.Len(t, insights.LearningTips, 4)

	insights, ok = engine.Insights(2)
	require.True(t, ok)
	assert.Equal(t, "4 weeks (estimated)", insights.EstimatedCompletionTime)
	assert.Equal(t, "No prerequisites required", insights.Prerequisites)
	assert.Len(t, insights.LearningTips, 3)

	_, ok = engine.Insights(42)
	assert.False(t, ok)
}
