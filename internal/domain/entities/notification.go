package entities

// Notification is a message for a user. Date is a display string such as
// "Just now" or "2 hours ago".
type Notification struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int    `json:"userId" gorm:"not null;index"`
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Date        string `json:"date" gorm:"type:text;not null"`
	Read        bool   `json:"read" gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
