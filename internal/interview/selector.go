package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/intervyou/intervyou/internal/models"
)

// ErrHistoryUnavailable reports that a user's session history could not be
// read. Selection never masks this as "no prior history": doing so would
// silently allow repeat questions.
var ErrHistoryUnavailable = errors.New("session history unavailable")

// HistoryStore is the read side of the session store the selector depends
// on. It is the only I/O a selection performs.
type HistoryStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.InterviewSession, error)
}

// Selector picks interview questions for a user, preferring questions the
// user has not seen in any previous session. Stateless apart from its
// read-only pool; safe for concurrent use.
type Selector struct {
	pool    *Pool
	history HistoryStore

	// shuffle permutes the final candidate list. Defaults to the package
	// math/rand shuffle; tests replace it for determinism.
	shuffle func(n int, swap func(i, j int))
}

func NewSelector(pool *Pool, history HistoryStore) *Selector {
	return &Selector{
		pool:    pool,
		history: history,
		shuffle: rand.Shuffle,
	}
}

// SelectQuestions returns up to count questions for the given interview
// configuration, in uniformly random order, skipping every question the user
// has already been asked. Fewer than count questions are returned when the
// user has seen everything else the corpus has to offer.
func (s *Selector) SelectQuestions(ctx context.Context, userID int64, typ, role, level string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	seen, err := s.seenQuestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	t := NormalizeType(typ)
	l := NormalizeLevel(level)

	// Prioritized candidates, deduplicated in first-seen order, minus the
	// questions this user has already answered.
	picked := make(map[string]struct{})
	var candidates []string
	for _, q := range s.pool.gatherByPriority(t, role, l) {
		key := strings.TrimSpace(q)
		if _, dup := picked[key]; dup {
			continue
		}
		if _, was := seen[key]; was {
			continue
		}
		picked[key] = struct{}{}
		candidates = append(candidates, q)
	}

	// Last resort: broaden across every bucket of every type until the
	// request is satisfied or the corpus is exhausted. This may cross
	// interview types on purpose.
	if len(candidates) < count {
		s.pool.all(func(q string) bool {
			key := strings.TrimSpace(q)
			if _, dup := picked[key]; !dup {
				if _, was := seen[key]; !was {
					picked[key] = struct{}{}
					candidates = append(candidates, q)
				}
			}
			return len(candidates) < count
		})
	}

	s.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	if candidates == nil {
		candidates = []string{}
	}
	return candidates, nil
}

// seenQuestions rebuilds the user's seen-question set from their session
// history. Always computed fresh; never cached.
func (s *Selector) seenQuestions(ctx context.Context, userID int64) (map[string]struct{}, error) {
	sessions, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, sess := range sessions {
		for _, f := range sess.Feedback {
			if q := strings.TrimSpace(f.Question); q != "" {
				seen[q] = struct{}{}
			}
		}
	}
	return seen, nil
}
