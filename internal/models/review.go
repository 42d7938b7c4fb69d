package models

import "time"

// Review is immutable once created; the ledger assigns ID, Timestamp and
// HelpfulCount at submission time.
type Review struct {
	ID           string    `json:"id"`
	PaperID      string    `json:"paperId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment"`
	Timestamp    time.Time `json:"timestamp"`
	HelpfulCount int       `json:"helpfulCount"`
}

// ReviewInput is the caller-supplied part of a submission. UserID/UserName
// are attribution only; when empty they default to the session's user.
type ReviewInput struct {
	PaperID  string `json:"paperId" binding:"required"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Score    int    `json:"score" binding:"required"`
	Comment  string `json:"comment"`
}
