package grievance

import "time"

const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Grievance is the one record with lifecycle state. ResolvedAt is derived:
// non-nil exactly when Status is Resolved or Rejected.
type Grievance struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	UserID     string     `gorm:"type:text;not null;index"`
	Subject    string     `gorm:"type:text;not null"`
	Details    string     `gorm:"type:text;not null"`
	Priority   string     `gorm:"type:varchar(16);not null"`
	Status     string     `gorm:"type:varchar(16);not null"`
	FiledAt    time.Time  `gorm:"not null"`
	ResolvedAt *time.Time `gorm:""`
}

// Terminal reports whether a status populates ResolvedAt.
func Terminal(status string) bool {
	return status == StatusResolved || status == StatusRejected
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// ValidTarget reports whether a status may be set through UpdateStatus.
// Open is deliberately absent: a grievance is never manually reopened to its
// initial state.
func ValidTarget(status string) bool {
	switch status {
	case StatusInProgress, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}
