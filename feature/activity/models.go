package activity

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Activity is one recorded storage operation.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Operation string    `gorm:"size:16;index" json:"operation"`
	Object    string    `gorm:"type:text" json:"object"`
	Outcome   string    `gorm:"size:16" json:"outcome"`
	Kind      string    `gorm:"size:32" json:"kind,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the table name used by Activity.
func (Activity) TableName() string {
	return "storage_activities"
}
