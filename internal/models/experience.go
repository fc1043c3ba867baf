package models

import (
	"strings"
	"time"
)

// Experience is one submitted interview write-up. Field contents are free text
// and are not validated.
type Experience struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	CTC       string    `json:"ctc"`
	Rounds    string    `json:"rounds"`
	Questions string    `json:"questions"`
	Advice    string    `json:"advice"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewExperience builds an experience from form input with surrounding
// whitespace removed. ID and CreatedAt are assigned when it is added to the
// catalog.
func NewExperience(company, ctc, rounds, questions, advice string) Experience {
	return Experience{
		Company:   strings.TrimSpace(company),
		CTC:       strings.TrimSpace(ctc),
		Rounds:    strings.TrimSpace(rounds),
		Questions: strings.TrimSpace(questions),
		Advice:    strings.TrimSpace(advice),
	}
}
