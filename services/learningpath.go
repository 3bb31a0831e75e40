package services

import (
	"fmt"

	courseModels "olms/models/course"
)

// maxPrerequisites caps how many stepping-stone courses get prepended
// to a learning path
const maxPrerequisites = 2

// StudentLevel derives a student's current skill level from their
// completed courses: Advanced if any completed course is Advanced,
// else Intermediate if any is Intermediate, else Beginner.
func StudentLevel(completed []courseModels.Course) string {
	level := courseModels.LevelBeginner
	for _, c := range completed {
		c = NormalizeCourse(c)
		if c.Level == courseModels.LevelAdvanced {
			return courseModels.LevelAdvanced
		}
		if c.Level == courseModels.LevelIntermediate {
			level = courseModels.LevelIntermediate
		}
	}
	return level
}

// PlanPath proposes an ordered course sequence ending at the target
// course. When a Beginner-level student targets an Intermediate or
// Advanced course, up to two Intermediate courses in the target's
// category are suggested first (catalog order). An unknown target
// yields an empty path.
func (e *RecommendationEngine) PlanPath(targetCourseID uint, completed []courseModels.Course) []courseModels.Course {
	var target *courseModels.Course
	for i := range e.catalog {
		if e.catalog[i].ID == targetCourseID {
			target = &e.catalog[i]
			break
		}
	}
	if target == nil {
		return []courseModels.Course{}
	}

	currentLevel := StudentLevel(completed)

	path := make([]courseModels.Course, 0, maxPrerequisites+1)
	if currentLevel == courseModels.LevelBeginner &&
		(target.Level == courseModels.LevelIntermediate || target.Level == courseModels.LevelAdvanced) {
		for _, c := range e.catalog {
			if len(path) == maxPrerequisites {
				break
			}
			// The target qualifies as its own prerequisite when it is
			// Intermediate; it belongs at the end only.
			if c.ID != target.ID && c.Level == courseModels.LevelIntermediate && c.Category == target.Category {
				path = append(path, c)
			}
		}
	}

	// Target always comes last
	return append(path, *target)
}

// CourseInsights holds advisory text about a single course
type CourseInsights struct {
	DifficultyAnalysis      string   `json:"difficulty_analysis"`
	EstimatedCompletionTime string   `json:"estimated_completion_time"`
	Prerequisites           string   `json:"prerequisites"`
	CareerRelevance         string   `json:"career_relevance"`
	LearningTips            []string `json:"learning_tips"`
}

// Insights generates advisory text for a catalog course. The second
// return value is false when the course is not in the catalog.
func (e *RecommendationEngine) Insights(courseID uint) (CourseInsights, bool) {
	var found *courseModels.Course
	for i := range e.catalog {
		if e.catalog[i].ID == courseID {
			found = &e.catalog[i]
			break
		}
	}
	if found == nil {
		return CourseInsights{}, false
	}

	return CourseInsights{
		DifficultyAnalysis: fmt.Sprintf("This %s level course is suitable for %s",
			found.Level, difficultyDescription(found.Level)),
		EstimatedCompletionTime: estimatedCompletionTime(found.Level),
		Prerequisites:           prerequisiteHint(*found),
		CareerRelevance: fmt.Sprintf("Skills from this course are valuable for %s careers",
			found.Category),
		LearningTips: learningTips(found.Level),
	}, true
}

func difficultyDescription(level string) string {
	switch level {
	case courseModels.LevelIntermediate:
		return "students with basic knowledge"
	case courseModels.LevelAdvanced:
		return "experienced students looking to master the topic"
	default:
		return "students new to the subject"
	}
}

func estimatedCompletionTime(level string) string {
	weeks := 4
	switch level {
	case courseModels.LevelIntermediate:
		weeks = 6
	case courseModels.LevelAdvanced:
		weeks = 8
	}
	return fmt.Sprintf("%d weeks (estimated)", weeks)
}

func prerequisiteHint(c courseModels.Course) string {
	switch c.Level {
	case courseModels.LevelIntermediate:
		return fmt.Sprintf("Basic knowledge of %s recommended", c.Category)
	case courseModels.LevelAdvanced:
		return fmt.Sprintf("Strong foundation in %s required", c.Category)
	default:
		return "No prerequisites required"
	}
}

func learningTips(level string) []string {
	tips := []string{
		"Set aside dedicated study time each week",
		"Practice regularly to reinforce concepts",
		"Don't hesitate to ask questions when stuck",
	}
	if level == courseModels.LevelAdvanced {
		tips = append(tips, "Consider forming study groups with peers")
	}
	return tips
}
