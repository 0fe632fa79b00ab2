package model

import (
	"strings"
	"time"
)

// WordsPerMinute is the assumed reading speed for reading-time estimates.
const WordsPerMinute = 200

// Entry represents a single journal record owned by one user.
type Entry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Mood        string    `json:"mood,omitempty"`
	MoodScore   float64   `json:"mood_score"`
	MoodImage   string    `json:"mood_image,omitempty"`
	Tags        []string  `json:"tags"`
	IsFavorite  bool      `json:"is_favorite"`
	IsPrivate   bool      `json:"is_private"`
	WordCount   int       `json:"word_count"`
	ReadingTime int       `json:"reading_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CountWords counts whitespace-separated words in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime estimates reading time in whole minutes for a word count,
// rounding up. Zero words reads in zero minutes.
func ReadingTime(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	return (wordCount + WordsPerMinute - 1) / WordsPerMinute
}

// SetContent updates the content and recomputes derived fields.
func (e *Entry) SetContent(content string) {
	e.Content = content
	e.WordCount = CountWords(content)
	e.ReadingTime = ReadingTime(e.WordCount)
}
