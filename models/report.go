// models/report.go
package models

import "time"

// Report status values. A report starts as pending and is only ever moved
// between these states by admin triage.
const (
	StatusPending    = "pending"
	StatusOnProgress = "onProgress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// ValidStatus reports whether s is one of the triage states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusOnProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Report represents a citizen-submitted issue report.
type Report struct {
	ID          string    `bson:"id" json:"id"`
	ReportedBy  string    `bson:"reportedBy" json:"reportedBy"`
	Description string    `bson:"description" json:"description"`
	Address     string    `bson:"address" json:"address"`
	Location    GeoPoint  `bson:"location" json:"location"`
	Images      []string  `bson:"images" json:"images"`
	Status      string    `bson:"status" json:"status"`
	Urgency     bool      `bson:"urgency" json:"urgency"`
	AcceptedBy  string    `bson:"acceptedBy,omitempty" json:"acceptedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`

	// Distance is populated by $geoNear queries only; never persisted.
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty"`
}

// ReportWithSubmitter is the admin listing shape: a report joined with the
// submitting user's public fields.
type ReportWithSubmitter struct {
	Report    `bson:",inline"`
	Submitter UserRef `bson:"submitter" json:"submitter"`
}
