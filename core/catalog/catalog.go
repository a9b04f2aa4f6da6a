// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package catalog provides the built-in sample content the screens start
// with: dashboard figures, the assistant catalog and the initial notes,
// quiz questions and flashcards.
package catalog

import (
	"time"

	"github.com/studygenie/studygenie/core/flashcards"
	"github.com/studygenie/studygenie/core/notes"
	"github.com/studygenie/studygenie/core/quiz"
)

// Progress is a percentage ring on the dashboard.
type Progress struct {
	Label string
	Value int
}

type Stat struct {
	Label string
	Value string
	Trend string
}

type Action struct {
	Title    string
	Subtitle string
	Progress int
}

type Assistant struct {
	ID       string
	Title    string
	Subtitle string
	Category string
}

type Feature struct {
	Icon  string
	Label string
}

type Dashboard struct {
	Greeting string
	Progress []Progress
	Stats    []Stat
	Actions  []Action
}

func SampleDashboard() Dashboard {
	return Dashboard{
		Greeting: "Ready to learn something new today?",
		Progress: []Progress{
			{Label: "Daily Goal", Value: 75},
			{Label: "Weekly", Value: 60},
			{Label: "Monthly", Value: 85},
		},
		Stats: []Stat{
			{Label: "Subjects", Value: "8", Trend: "+2"},
			{Label: "Study Time", Value: "4.5h", Trend: "+30m"},
			{Label: "Goals Met", Value: "12/15", Trend: "+3"},
			{Label: "Streak", Value: "7 days", Trend: "+1"},
		},
		Actions: []Action{
			{Title: "Continue Math Practice", Subtitle: "Algebra - Chapter 5", Progress: 65},
			{Title: "Review Physics Notes", Subtitle: "Quantum Mechanics", Progress: 30},
			{Title: "Complete Chemistry Lab", Subtitle: "Due tomorrow", Progress: 90},
		},
	}
}

func Assistants() []Assistant {
	return []Assistant{
		{ID: "tutor", Title: "AI Tutor", Subtitle: "Get personalized help", Category: "learning"},
		{ID: "math", Title: "Math Solver", Subtitle: "Step-by-step solutions", Category: "learning"},
		{ID: "essay", Title: "Essay Writer", Subtitle: "Writing assistance", Category: "writing"},
		{ID: "guide", Title: "Study Guide", Subtitle: "Summarize content", Category: "writing"},
		{ID: "ideas", Title: "Idea Generator", Subtitle: "Creative brainstorming", Category: "creative"},
		{ID: "buddy", Title: "Study Buddy", Subtitle: "Interactive learning", Category: "learning"},
		{ID: "research", Title: "Research Helper", Subtitle: "Find reliable sources", Category: "research"},
		{ID: "quiz", Title: "Quick Quiz", Subtitle: "Test your knowledge", Category: "learning"},
	}
}

// FilterAssistants returns the assistants of one category, or all of them
// for an empty category.
func FilterAssistants(category string) []Assistant {
	all := Assistants()
	if category == "" {
		return all
	}
	var out []Assistant
	for _, a := range all {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func Features() []Feature {
	return []Feature{
		{Icon: "🧮", Label: "Calculator"},
		{Icon: "📝", Label: "Notes"},
		{Icon: "🧠", Label: "Quiz"},
		{Icon: "⚡", Label: "Cards"},
	}
}

func SampleQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:          "1",
			Prompt:      "What is the derivative of x²?",
			Options:     []string{"x", "2x", "x²", "2x²"},
			Correct:     1,
			Explanation: "The derivative of x² is 2x using the power rule.",
		},
		{
			ID:          "2",
			Prompt:      "Which programming language is known for AI development?",
			Options:     []string{"HTML", "Python", "CSS", "SQL"},
			Correct:     1,
			Explanation: "Python is widely used in AI and machine learning due to its extensive libraries.",
		},
		{
			ID:          "3",
			Prompt:      "What is the capital of France?",
			Options:     []string{"London", "Berlin", "Paris", "Madrid"},
			Correct:     2,
			Explanation: "Paris is the capital and largest city of France.",
		},
	}
}

func SampleCards() []flashcards.Card {
	return []flashcards.Card{
		{ID: "1", Front: "What is the derivative of sin(x)?", Back: "cos(x)", Category: "Calculus", Difficulty: flashcards.Medium},
		{ID: "2", Front: "What does HTML stand for?", Back: "HyperText Markup Language", Category: "Web Development", Difficulty: flashcards.Easy},
		{ID: "3", Front: "What is the time complexity of binary search?", Back: "O(log n)", Category: "Computer Science", Difficulty: flashcards.Hard},
	}
}

// SampleNotes dates the sample notes at now.
func SampleNotes(now time.Time) []notes.Note {
	return []notes.Note{
		{
			ID:        "1",
			Title:     "Study Plan",
			Content:   "- Review calculus chapters 1-3\n- Practice integration problems\n- Prepare for midterm exam",
			CreatedAt: now,
			Color:     "blue",
		},
		{
			ID:        "2",
			Title:     "Research Ideas",
			Content:   "- AI in education\n- Machine learning applications\n- Natural language processing",
			CreatedAt: now,
			Color:     "purple",
		},
	}
}
