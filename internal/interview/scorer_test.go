package interview_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervyou/intervyou/internal/interview"
)

func TestScore_StructuredAnswer(t *testing.T) {
	question := "Tell me about a time you led a team."
	answer := "I led the team by assigning tasks and we achieved the result of shipping on time."

	got := interview.Score(question, answer)

	assert.Equal(t, question, got.Question)
	assert.Equal(t, answer, got.Answer)
	assert.Equal(t, 70, got.Score)

	assert.Equal(t, 16, got.Metrics.WordCount)
	assert.Equal(t, 6, got.Metrics.SpeakingTime)
	assert.Equal(t, 0, got.Metrics.FillerWords)
	assert.Equal(t, 60, got.Metrics.Confidence)

	assert.Equal(t, "Excellent communication with no filler words. Clear and confident delivery.", got.Feedback.Communication)
	assert.Equal(t, "Great use of the STAR method! Your answer is well-structured and easy to follow.", got.Feedback.Structure)
	assert.Equal(t, "Good content, but try to be more specific and directly address the key points of the question.", got.Feedback.Content)

	require.Len(t, got.Feedback.Suggestions, 2)
	assert.Equal(t, "Provide more specific examples and details to strengthen your answer.", got.Feedback.Suggestions[0])
	assert.Equal(t, "Focus on directly answering the question with relevant examples.", got.Feedback.Suggestions[1])
}

func TestScore_FillerHeavyAnswer(t *testing.T) {
	got := interview.Score(
		"What is your experience with teamwork?",
		"um uh like basically actually good good good good good",
	)

	assert.Equal(t, 5, got.Metrics.FillerWords)
	assert.Equal(t, 10, got.Metrics.WordCount)
	assert.Equal(t, 4, got.Metrics.SpeakingTime)
	assert.Equal(t, 0, got.Metrics.Confidence)
	assert.Equal(t, 17, got.Score)

	assert.Equal(t, "Communication could be improved by reducing filler words. Practice pausing and thinking before speaking.", got.Feedback.Communication)
	assert.Len(t, got.Feedback.Suggestions, 4)
}

func TestScore_CountsFillerPhrases(t *testing.T) {
	got := interview.Score("", "you know I think sort of yes kind of")
	assert.Equal(t, 3, got.Metrics.FillerWords)
}

func TestScore_EmptyAnswer(t *testing.T) {
	got := interview.Score("", "")

	assert.Equal(t, 0, got.Metrics.WordCount)
	assert.Equal(t, 0, got.Metrics.SpeakingTime)
	assert.Equal(t, 0, got.Metrics.FillerWords)
	// no question keywords to miss
	assert.Equal(t, 100, got.Metrics.Confidence)
	assert.Equal(t, 60, got.Score)
	assert.NotNil(t, got.Feedback.Suggestions)
}

func TestScore_StopWordOnlyQuestion(t *testing.T) {
	got := interview.Score("Do it to me", "completely unrelated text here")
	assert.Equal(t, 100, got.Metrics.Confidence)
}

func TestScore_FullStar(t *testing.T) {
	got := interview.Score("", "In that situation my task was clear, I implemented the fix and the result improved.")

	assert.Equal(t, 93, got.Score)
	assert.Equal(t, "Great use of the STAR method! Your answer is well-structured and easy to follow.", got.Feedback.Structure)
}

func TestScore_SpeakingTime(t *testing.T) {
	// 75 words at 150 wpm is 30 seconds
	answer := strings.TrimSpace(strings.Repeat("word ", 75))
	got := interview.Score("", answer)
	assert.Equal(t, 75, got.Metrics.WordCount)
	assert.Equal(t, 30, got.Metrics.SpeakingTime)
}

func TestScore_BoundedAndDeterministic(t *testing.T) {
	answers := []string{
		"",
		"short",
		"um uh like basically actually " + strings.Repeat("um ", 50),
		strings.Repeat("a detailed answer about the project situation task action result ", 20),
	}
	for _, a := range answers {
		first := interview.Score("Describe a project.", a)
		second := interview.Score("Describe a project.", a)

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first.Score, 0)
		assert.LessOrEqual(t, first.Score, 100)
		assert.GreaterOrEqual(t, first.Metrics.Confidence, 0)
		assert.LessOrEqual(t, first.Metrics.Confidence, 100)
	}
}
