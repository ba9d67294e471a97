package interview

import (
	"math"
	"strings"

	"github.com/intervyou/intervyou/internal/models"
)

// Average speaking rate used for the speaking-time estimate.
const wordsPerMinute = 150

// Single-token fillers are counted by exact token match. Multi-word fillers
// cannot survive whitespace tokenization, so they are counted separately as
// non-overlapping substring scans over the lowercased answer.
var fillerTokens = []string{"um", "uh", "like", "basically", "actually"}
var fillerPhrases = []string{"you know", "sort of", "kind of"}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
		"has", "had", "do", "does", "did", "will", "would", "could", "should",
		"may", "might", "can", "this", "that", "these", "those", "i", "you",
		"he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	} {
		stopWords[w] = struct{}{}
	}
}

// starIndicators are the four STAR narrative groups. Each group that has at
// least one trigger present in the answer contributes 25 points to the
// structure score, once.
var starIndicators = [4][]string{
	{"when", "situation", "time", "worked", "job", "project"},          // Situation
	{"task", "goal", "objective", "responsibility", "needed"},          // Task
	{"did", "implemented", "created", "developed", "worked", "collaborated"}, // Action
	{"result", "outcome", "achieved", "improved", "successful", "impact"},    // Result
}

// Score analyzes a free-text answer against its question and produces a
// bounded 0-100 score with structured feedback and metrics. Pure and
// deterministic; never fails, including for empty inputs.
func Score(question, answer string) models.AnswerAnalysis {
	lower := strings.ToLower(answer)
	tokens := strings.Fields(lower)
	wordCount := len(tokens)

	speakingTime := int(math.Round(float64(wordCount) / wordsPerMinute * 60))

	fillerCount := countFillers(lower, tokens)

	questionKeywords := extractKeywords(question)
	answerKeywords := extractKeywords(answer)
	confidence := keywordMatch(questionKeywords, answerKeywords)

	structureScore := analyzeStructure(lower)

	// Weighted overall: relevance 40%, structure 30%, fluency 20%,
	// verbosity 10%. The transforms and weights are part of the contract;
	// scores produced with different ones are not comparable.
	raw := float64(confidence)*0.4 +
		float64(structureScore)*0.3 +
		math.Max(0, 100-float64(fillerCount)*5)*0.2 +
		math.Min(100, float64(wordCount)*2)*0.1
	overall := int(math.Round(math.Min(100, math.Max(0, raw))))

	return models.AnswerAnalysis{
		Question: question,
		Answer:   answer,
		Score:    overall,
		Feedback: buildFeedback(confidence, structureScore, fillerCount, wordCount),
		Metrics: models.AnswerMetrics{
			WordCount:    wordCount,
			SpeakingTime: speakingTime,
			FillerWords:  fillerCount,
			Confidence:   confidence,
		},
	}
}

func countFillers(lowerAnswer string, tokens []string) int {
	count := 0
	for _, t := range tokens {
		for _, f := range fillerTokens {
			if t == f {
				count++
				break
			}
		}
	}
	for _, p := range fillerPhrases {
		count += strings.Count(lowerAnswer, p)
	}
	return count
}

// extractKeywords lowercases, strips punctuation, and keeps tokens longer
// than two characters that are not stop words.
func extractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9', r == '_':
			return r
		case r == ' ', r == '\t', r == '\n', r == '\r':
			return r
		default:
			return -1
		}
	}, strings.ToLower(text))

	var keywords []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// keywordMatch scores how many question keywords are covered by the answer.
// Containment counts in either direction, so "design"/"designing" match. A
// question with no keywords is vacuously matched.
func keywordMatch(questionKeywords, answerKeywords []string) int {
	if len(questionKeywords) == 0 {
		return 100
	}

	matched := 0
	for _, q := range questionKeywords {
		for _, a := range answerKeywords {
			if strings.Contains(a, q) || strings.Contains(q, a) {
				matched++
				break
			}
		}
	}
	return int(math.Round(float64(matched) / float64(len(questionKeywords)) * 100))
}

func analyzeStructure(lowerAnswer string) int {
	score := 0
	for _, group := range starIndicators {
		for _, indicator := range group {
			if strings.Contains(lowerAnswer, indicator) {
				score += 25
				break
			}
		}
	}
	return score
}

func buildFeedback(confidence, structureScore, fillerCount, wordCount int) models.AnswerFeedback {
	fb := models.AnswerFeedback{Suggestions: []string{}}

	switch {
	case fillerCount == 0:
		fb.Communication = "Excellent communication with no filler words. Clear and confident delivery."
	case fillerCount <= 2:
		fb.Communication = "Good communication with minimal filler words. Consider pausing instead of using fillers."
	default:
		fb.Communication = "Communication could be improved by reducing filler words. Practice pausing and thinking before speaking."
	}

	switch {
	case structureScore >= 75:
		fb.Structure = "Great use of the STAR method! Your answer is well-structured and easy to follow."
	case structureScore >= 50:
		fb.Structure = "Good structure, but consider using the STAR method more explicitly for better organization."
	default:
		fb.Structure = "Consider using the STAR method (Situation, Task, Action, Result) to structure your response better."
	}

	switch {
	case confidence >= 80:
		fb.Content = "Excellent content relevance! Your answer directly addresses the question."
	case confidence >= 60:
		fb.Content = "Good content, but try to be more specific and directly address the key points of the question."
	default:
		fb.Content = "Your answer could be more focused on the specific question. Consider rephrasing to better match the question."
	}

	if wordCount < 30 {
		fb.Suggestions = append(fb.Suggestions, "Provide more specific examples and details to strengthen your answer.")
	}
	if fillerCount > 3 {
		fb.Suggestions = append(fb.Suggestions, "Practice speaking without filler words to sound more professional.")
	}
	if structureScore < 50 {
		fb.Suggestions = append(fb.Suggestions, "Use the STAR method: describe the Situation, explain your Task, detail your Actions, and share the Results.")
	}
	if confidence < 70 {
		fb.Suggestions = append(fb.Suggestions, "Focus on directly answering the question with relevant examples.")
	}

	return fb
}
