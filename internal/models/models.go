package models

// User is a registered account. PasswordHash is never serialized in API
// responses; handlers copy the public fields into their own response shapes.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
	LastLogin    *int64 `json:"last_login,omitempty" db:"last_login"`
}

// FeedbackItem is one question/answer pair of a finished interview together
// with the feedback text shown for it.
type FeedbackItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback,omitempty"`
}

// InterviewSession is a completed (or ended) mock interview. It is written
// once when the interview finishes and never mutated afterwards; the only
// allowed operation is deletion by its owner.
type InterviewSession struct {
	ID           string         `json:"id" db:"id"`
	UserID       int64          `json:"user_id" db:"user_id"`
	Type         string         `json:"type" db:"type"`
	Level        string         `json:"level" db:"level"`
	Role         string         `json:"role" db:"role"`
	Duration     int            `json:"duration" db:"duration"` // seconds
	Score        int            `json:"score" db:"score"`       // 0-100
	Feedback     []FeedbackItem `json:"feedback"`
	Strengths    []string       `json:"strengths"`
	Improvements []string       `json:"improvements"`
	Created      int64          `json:"created" db:"created"`
}

// AnswerFeedback holds the three tiered feedback messages plus the ordered
// list of conditional suggestions produced for one answer.
type AnswerFeedback struct {
	Communication string   `json:"communication"`
	Structure     string   `json:"structure"`
	Content       string   `json:"content"`
	Suggestions   []string `json:"suggestions"`
}

// AnswerMetrics are the measurable quantities behind an answer score.
// SpeakingTime is an estimate in seconds assuming 150 words per minute;
// Confidence is the keyword-overlap relevance score (0-100), not a
// statistical certainty.
type AnswerMetrics struct {
	WordCount    int `json:"wordCount"`
	SpeakingTime int `json:"speakingTime"`
	FillerWords  int `json:"fillerWords"`
	Confidence   int `json:"confidence"`
}

// AnswerAnalysis is the result of scoring one free-text answer against its
// question. Immutable once produced.
type AnswerAnalysis struct {
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	Score    int            `json:"score"` // 0-100
	Feedback AnswerFeedback `json:"feedback"`
	Metrics  AnswerMetrics  `json:"metrics"`
}
