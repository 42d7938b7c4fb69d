package store

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"agent_review_go_backend/internal/broker"
	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Ledger is the single source of truth for papers, reviews, users and
// sessions. One mutex serializes every mutation, so two submissions can
// never fold the same prior aggregate state into a paper twice; reads take
// the read lock and therefore always observe fully applied submissions.
type Ledger struct {
	mu sync.RWMutex

	papers   []models.Paper
	paperIdx map[string]int
	// raw sum of submitted scores per paper. The published AvgScore is the
	// rolled one-decimal average, which can drift from scoreSum/count over
	// very long runs; the raw sum is kept so the drift is observable.
	scoreSum map[string]float64

	reviews []models.Review

	users    []models.User
	userIdx  map[string]int
	sessions map[string]string // session id -> user id

	incentivePoints int
	events          *broker.Broker
}

// NewLedger seeds the ledger with the given papers and user roster.
// incentivePoints is credited to the submitting session's user on every
// accepted review. events may be nil.
func NewLedger(papers []models.Paper, users []models.User, incentivePoints int, events *broker.Broker) *Ledger {
	l := &Ledger{
		papers:          make([]models.Paper, len(papers)),
		paperIdx:        make(map[string]int, len(papers)),
		scoreSum:        make(map[string]float64, len(papers)),
		users:           make([]models.User, len(users)),
		userIdx:         make(map[string]int, len(users)),
		sessions:        make(map[string]string),
		incentivePoints: incentivePoints,
		events:          events,
	}
	copy(l.papers, papers)
	for i, p := range l.papers {
		l.paperIdx[p.ID] = i
		// Seed aggregates arrive pre-rolled; reconstruct the sum they imply.
		l.scoreSum[p.ID] = p.AvgScore * float64(p.ReviewCount)
	}
	copy(l.users, users)
	for i, u := range l.users {
		l.userIdx[u.ID] = i
	}
	return l
}

// round1 rounds to one decimal place, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func copyPaper(p models.Paper) models.Paper {
	out := p
	out.Authors = append([]string(nil), p.Authors...)
	return out
}

func copyUser(u models.User) models.User {
	out := u
	out.Reviews = append([]string(nil), u.Reviews...)
	return out
}

// ListPapers returns a snapshot of all papers in seed order.
func (l *Ledger) ListPapers() []models.Paper {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Paper, len(l.papers))
	for i, p := range l.papers {
		out[i] = copyPaper(p)
	}
	return out
}

// GetPaper returns the paper with the given id.
func (l *Ledger) GetPaper(id string) (models.Paper, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.paperIdx[id]
	if !ok {
		return models.Paper{}, errors.NewNotFoundError(fmt.Sprintf("paper %s not found", id))
	}
	return copyPaper(l.papers[idx]), nil
}

// ListReviews returns all reviews for the paper, most recent first. An
// unknown paper yields an empty slice, not an error. Reviews sharing a
// timestamp keep newest-submitted-first order, which is deterministic
// within a process run.
func (l *Ledger) ListReviews(paperID string) []models.Review {
	l.mu.RLock()
	defer l.mu.RUnlock()
	matching := make([]models.Review, 0)
	for i := len(l.reviews) - 1; i >= 0; i-- {
		if l.reviews[i].PaperID == paperID {
			matching = append(matching, l.reviews[i])
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Timestamp.After(matching[j].Timestamp)
	})
	return matching
}

// SubmitReview validates and stores a review, folds its score into the
// paper's aggregate and credits the session's user. Validation happens
// before any mutation, so a failed submission leaves the ledger untouched.
func (l *Ledger) SubmitReview(sessionID string, input models.ReviewInput) (models.Review, error) {
	if input.Score < 1 || input.Score > 5 {
		return models.Review{}, errors.NewValidationError("score must be an integer between 1 and 5")
	}
	if input.PaperID == "" {
		return models.Review{}, errors.NewValidationError("paperId is required")
	}

	l.mu.Lock()
	userIdx, ok := l.sessionUserIdx(sessionID)
	if !ok {
		l.mu.Unlock()
		return models.Review{}, errors.NewNotFoundError(fmt.Sprintf("session %s not found", sessionID))
	}
	paperIdx, ok := l.paperIdx[input.PaperID]
	if !ok {
		l.mu.Unlock()
		return models.Review{}, errors.NewNotFoundError(fmt.Sprintf("paper %s not found", input.PaperID))
	}

	user := &l.users[userIdx]
	reviewerID := input.UserID
	reviewerName := input.UserName
	if reviewerID == "" {
		reviewerID = user.ID
	}
	if reviewerName == "" {
		reviewerName = user.Name
	}

	review := models.Review{
		ID:           uuid.New().String(),
		PaperID:      input.PaperID,
		UserID:       reviewerID,
		UserName:     reviewerName,
		Score:        input.Score,
		Comment:      input.Comment,
		Timestamp:    time.Now().UTC(),
		HelpfulCount: 0,
	}
	l.reviews = append(l.reviews, review)

	// Rolling one-decimal average, same semantics as the aggregate the
	// papers were seeded with.
	paper := &l.papers[paperIdx]
	newCount := paper.ReviewCount + 1
	paper.AvgScore = round1((paper.AvgScore*float64(paper.ReviewCount) + float64(input.Score)) / float64(newCount))
	paper.ReviewCount = newCount
	l.scoreSum[paper.ID] += float64(input.Score)

	user.Points += l.incentivePoints
	user.Reviews = append(user.Reviews, input.PaperID)

	paperEvent := broker.Event{
		Topic:       broker.TopicPaperUpdated,
		PaperID:     paper.ID,
		ReviewID:    review.ID,
		ReviewCount: paper.ReviewCount,
		AvgScore:    paper.AvgScore,
		Timestamp:   review.Timestamp,
	}
	userEvent := broker.Event{
		Topic:     broker.TopicLeaderboardUpdated,
		UserID:    user.ID,
		Points:    user.Points,
		Timestamp: review.Timestamp,
	}
	l.mu.Unlock()

	// Published outside the lock so a slow subscriber cannot stall writers.
	if l.events != nil {
		l.events.Publish(paperEvent)
		l.events.Publish(userEvent)
	}

	log.Info().
		Str("paper_id", review.PaperID).
		Str("review_id", review.ID).
		Int("score", review.Score).
		Msg("review submitted")

	return review, nil
}

// CreateSession binds a new session to a roster user. An empty userID
// binds the default demo user (the first roster entry).
func (l *Ledger) CreateSession(userID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if userID == "" {
		if len(l.users) == 0 {
			return "", errors.NewNotFoundError("user roster is empty")
		}
		userID = l.users[0].ID
	}
	if _, ok := l.userIdx[userID]; !ok {
		return "", errors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
	}
	sessionID := uuid.New().String()
	l.sessions[sessionID] = userID
	return sessionID, nil
}

// CurrentUser returns the user bound to the session, reflecting every
// completed submission from that session.
func (l *Ledger) CurrentUser(sessionID string) (models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.sessionUserIdx(sessionID)
	if !ok {
		return models.User{}, errors.NewNotFoundError(fmt.Sprintf("session %s not found", sessionID))
	}
	return copyUser(l.users[idx]), nil
}

// Leaderboard returns all roster users sorted by points descending. Ties
// keep roster order so the displayed ranking is stable across calls.
func (l *Ledger) Leaderboard() []models.User {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.User, len(l.users))
	for i, u := range l.users {
		out[i] = copyUser(u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}

// sessionUserIdx resolves a session to a roster index. Caller holds l.mu.
func (l *Ledger) sessionUserIdx(sessionID string) (int, bool) {
	userID, ok := l.sessions[sessionID]
	if !ok {
		return 0, false
	}
	idx, ok := l.userIdx[userID]
	return idx, ok
}
