package store

import (
	"fmt"
	"sync"
	"testing"

	"agent_review_go_backend/internal/broker"
	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	ledger := NewLedger(SeedPapers(), SeedUsers(), 10, nil)
	sessionID, err := ledger.CreateSession("")
	require.NoError(t, err)
	return ledger, sessionID
}

func TestSubmitReviewUpdatesAggregate(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	// p1 is seeded with reviewCount=12, avgScore=4.5 (sum 54.0).
	review, err := ledger.SubmitReview(sessionID, models.ReviewInput{
		PaperID: "p1",
		Score:   5,
		Comment: "Strong consensus protocol.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, 0, review.HelpfulCount)
	assert.False(t, review.Timestamp.IsZero())

	paper, err := ledger.GetPaper("p1")
	require.NoError(t, err)
	assert.Equal(t, 13, paper.ReviewCount)
	// round1((4.5*12 + 5) / 13) = round1(4.538..) = 4.5
	assert.Equal(t, 4.5, paper.AvgScore)

	_, err = ledger.SubmitReview(sessionID, models.ReviewInput{
		PaperID: "p1",
		Score:   1,
	})
	require.NoError(t, err)

	paper, err = ledger.GetPaper("p1")
	require.NoError(t, err)
	assert.Equal(t, 14, paper.ReviewCount)
	// round1((4.5*13 + 1) / 14) = round1(4.25) = 4.3, half away from zero.
	assert.Equal(t, 4.3, paper.AvgScore)
}

func TestSubmitReviewMeanInvariant(t *testing.T) {
	papers := []models.Paper{{ID: "fresh", Title: "Fresh Paper"}}
	ledger := NewLedger(papers, SeedUsers(), 10, nil)
	sessionID, err := ledger.CreateSession("")
	require.NoError(t, err)

	// The rolling update reproduces the exact mean of these scores at every
	// step, so the final aggregate must equal round1(mean).
	scores := []int{2, 3, 4, 5}
	for _, score := range scores {
		_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "fresh", Score: score})
		require.NoError(t, err)
	}

	paper, err := ledger.GetPaper("fresh")
	require.NoError(t, err)
	assert.Equal(t, len(scores), paper.ReviewCount)
	assert.Equal(t, 3.5, paper.AvgScore)
}

func TestSubmitReviewValidation(t *testing.T) {
	ledger, sessionID := newTestLedger(t)
	before, err := ledger.GetPaper("p1")
	require.NoError(t, err)

	for _, score := range []int{0, 6, -1} {
		_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p1", Score: score})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err), "score %d should be rejected as validation error", score)
	}

	_, err = ledger.SubmitReview(sessionID, models.ReviewInput{Score: 4})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	// A failed submission leaves the aggregate and the review log untouched.
	after, err := ledger.GetPaper("p1")
	require.NoError(t, err)
	assert.Equal(t, before.ReviewCount, after.ReviewCount)
	assert.Equal(t, before.AvgScore, after.AvgScore)
	assert.Empty(t, ledger.ListReviews("p1"))

	user, err := ledger.CurrentUser(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 150, user.Points)
}

func TestSubmitReviewUnknownPaper(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p999", Score: 4})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, ledger.ListReviews("p999"))
}

func TestSubmitReviewUnknownSession(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.SubmitReview("no-such-session", models.ReviewInput{PaperID: "p1", Score: 4})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSubmitReviewCreditsSessionUser(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p3", Score: 5})
	require.NoError(t, err)

	user, err := ledger.CurrentUser(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 160, user.Points)
	assert.Equal(t, []string{"p1", "p2", "p3"}, user.Reviews)
}

func TestSubmitReviewAttributionDefaultsToSessionUser(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	review, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p2", Score: 4})
	require.NoError(t, err)
	assert.Equal(t, "u1", review.UserID)
	assert.Equal(t, "DeSci_Researcher_01", review.UserName)

	review, err = ledger.SubmitReview(sessionID, models.ReviewInput{
		PaperID:  "p2",
		UserID:   "ext-1",
		UserName: "External Reviewer",
		Score:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-1", review.UserID)
	assert.Equal(t, "External Reviewer", review.UserName)
}

func TestListReviewsOrdering(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	first, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p1", Score: 4, Comment: "first"})
	require.NoError(t, err)
	_, err = ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p2", Score: 3})
	require.NoError(t, err)
	second, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p1", Score: 2, Comment: "second"})
	require.NoError(t, err)

	reviews := ledger.ListReviews("p1")
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)

	// A fresh submission becomes the head of the next listing.
	third, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p1", Score: 5})
	require.NoError(t, err)
	reviews = ledger.ListReviews("p1")
	require.Len(t, reviews, 3)
	assert.Equal(t, third.ID, reviews[0].ID)
}

func TestListReviewsUnknownPaperIsEmpty(t *testing.T) {
	ledger, _ := newTestLedger(t)
	assert.Empty(t, ledger.ListReviews("p999"))
}

func TestLeaderboardSortedAndLive(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	board := ledger.Leaderboard()
	require.Len(t, board, 6)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Points, board[i].Points)
	}

	// Six submissions bring the default user from 150 to 210 points,
	// tying u6; roster order breaks the tie deterministically.
	for i := 0; i < 6; i++ {
		_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p1", Score: 4})
		require.NoError(t, err)
	}

	board = ledger.Leaderboard()
	var u1Pos, u6Pos int
	for i, u := range board {
		switch u.ID {
		case "u1":
			u1Pos = i
			assert.Equal(t, 210, u.Points)
		case "u6":
			u6Pos = i
		}
	}
	assert.Less(t, u1Pos, u6Pos)
}

func TestListPapersIdempotent(t *testing.T) {
	ledger, _ := newTestLedger(t)
	assert.Equal(t, ledger.ListPapers(), ledger.ListPapers())
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ledger, sessionID := newTestLedger(t)

	papers := ledger.ListPapers()
	papers[0].Title = "mutated"
	papers[0].Authors[0] = "mutated"
	papers[0].ReviewCount = 999

	fresh, err := ledger.GetPaper(papers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Multi-Agent Collaboration for RLHF: A Consensus Approach", fresh.Title)
	assert.Equal(t, "Li Wei", fresh.Authors[0])
	assert.Equal(t, 12, fresh.ReviewCount)

	user, err := ledger.CurrentUser(sessionID)
	require.NoError(t, err)
	user.Reviews[0] = "mutated"
	fresh2, err := ledger.CurrentUser(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "p1", fresh2.Reviews[0])
}

func TestConcurrentSubmissionsLoseNoIncrements(t *testing.T) {
	papers := []models.Paper{{ID: "fresh", Title: "Fresh Paper"}}
	ledger := NewLedger(papers, SeedUsers(), 10, nil)
	sessionID, err := ledger.CreateSession("")
	require.NoError(t, err)

	const submitters = 50
	var wg sync.WaitGroup
	wg.Add(submitters)
	for i := 0; i < submitters; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "fresh", Score: 4})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	paper, err := ledger.GetPaper("fresh")
	require.NoError(t, err)
	assert.Equal(t, submitters, paper.ReviewCount)
	assert.Equal(t, 4.0, paper.AvgScore)
	assert.Len(t, ledger.ListReviews("fresh"), submitters)

	user, err := ledger.CurrentUser(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 150+submitters*10, user.Points)
}

func TestSubmitReviewPublishesEvents(t *testing.T) {
	events := broker.NewBroker()
	ledger := NewLedger(SeedPapers(), SeedUsers(), 10, events)
	sessionID, err := ledger.CreateSession("")
	require.NoError(t, err)

	paperUpdates := events.Subscribe(broker.TopicPaperUpdated)
	leaderboardUpdates := events.Subscribe(broker.TopicLeaderboardUpdated)

	review, err := ledger.SubmitReview(sessionID, models.ReviewInput{PaperID: "p4", Score: 5})
	require.NoError(t, err)

	paperEvent := <-paperUpdates
	assert.Equal(t, "p4", paperEvent.PaperID)
	assert.Equal(t, review.ID, paperEvent.ReviewID)
	assert.Equal(t, 29, paperEvent.ReviewCount)

	userEvent := <-leaderboardUpdates
	assert.Equal(t, "u1", userEvent.UserID)
	assert.Equal(t, 160, userEvent.Points)
}

func TestCreateSessionUnknownUser(t *testing.T) {
	ledger, _ := newTestLedger(t)
	_, err := ledger.CreateSession("u999")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCreateSessionPerUser(t *testing.T) {
	ledger, _ := newTestLedger(t)
	for _, userID := range []string{"u2", "u3"} {
		sessionID, err := ledger.CreateSession(userID)
		require.NoError(t, err)
		user, err := ledger.CurrentUser(sessionID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	}
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	cases := map[float64]float64{
		4.25:  4.3,
		4.249: 4.2,
		4.538: 4.5,
		4.0:   4.0,
	}
	for in, want := range cases {
		assert.Equal(t, want, round1(in), fmt.Sprintf("round1(%v)", in))
	}
}
