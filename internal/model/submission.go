package model

import "time"

// SubmissionStatus is the moderation state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Category is the kind of shared course material.
type Category string

const (
	CategoryNotes      Category = "notes"
	CategoryExam       Category = "exam"
	CategoryStudyGuide Category = "study-guide"
	CategoryOther      Category = "other"
)

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNotes, CategoryExam, CategoryStudyGuide, CategoryOther:
		return true
	}
	return false
}

// ReviewAction is an admin moderation decision.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// MaxReviewerNoteLen bounds the stored reviewer note, counted in characters.
const MaxReviewerNoteLen = 500

// Submission is a user-contributed resource record.
// ReviewedAt and ReviewerNote stay empty while Status is pending.
type Submission struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Course       string           `json:"course"`
	Category     Category         `json:"category"`
	FileURL      string           `json:"fileUrl"`
	Status       SubmissionStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	ReviewedAt   *time.Time       `json:"reviewedAt,omitempty"`
	ReviewerNote *string          `json:"reviewerNote,omitempty"`
}

// Rating is the accumulated score of one submission.
type Rating struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// Average returns the mean score rounded to one decimal, or 0 when unrated.
func (r Rating) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	avg := float64(r.Total) / float64(r.Count)
	return float64(int(avg*10+0.5)) / 10
}

// PublicSubmission is the read model returned by the public listing.
type PublicSubmission struct {
	Submission
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
}
