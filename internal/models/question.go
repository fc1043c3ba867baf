package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/xshare/internal/common"
)

// QuestionStatus is the moderation state of a question. Rejected questions
// are discarded, so there is no rejected status.
type QuestionStatus string

const (
	StatusPending  QuestionStatus = "pending"
	StatusApproved QuestionStatus = "approved"
)

// Question is asked by a user under an experience and becomes publicly
// visible only after an admin approves it.
type Question struct {
	ID           string         `json:"id"`
	ExperienceID string         `json:"experienceId"`
	Question     string         `json:"question"`
	AskedBy      string         `json:"askedBy"`
	Status       QuestionStatus `json:"status"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	ModeratedAt  *time.Time     `json:"moderatedAt,omitempty"`
}

// NewQuestion builds a pending question. The text is trimmed and must not be
// blank.
func NewQuestion(experienceID, text, askedBy string, now time.Time) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrEmptyText
	}
	return &Question{
		ID:           common.NewID(),
		ExperienceID: experienceID,
		Question:     text,
		AskedBy:      askedBy,
		Status:       StatusPending,
		SubmittedAt:  now,
	}, nil
}

// Approved returns a copy of q marked approved at the given time.
func (q Question) Approved(at time.Time) Question {
	q.Status = StatusApproved
	q.ModeratedAt = &at
	return q
}
