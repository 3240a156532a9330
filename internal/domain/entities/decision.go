package entities

// Decision is a resolution recorded during a meeting
type Decision struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	MeetingID int    `json:"meetingId" gorm:"not null;index"`
	Text      string `json:"text" gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM
func (Decision) TableName() string {
	return "decisions"
}
