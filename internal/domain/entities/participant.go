package entities

// Participant links a meeting to a person. Name is always the resolved display
// name; UserID is kept when the participant came from a known user.
type Participant struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	MeetingID int    `json:"meetingId" gorm:"not null;index"`
	UserID    *int   `json:"userId,omitempty" gorm:"column:user_id"`
	Name      string `json:"name" gorm:"type:varchar(255);not null;default:''"`
}

// TableName specifies the table name for GORM
func (Participant) TableName() string {
	return "participants"
}

// NewUserParticipant creates a participant referencing a user
func NewUserParticipant(meetingID, userID int) *Participant {
	id := userID
	return &Participant{MeetingID: meetingID, UserID: &id}
}

// NewNamedParticipant creates a participant known only by name (e.g. a transcript speaker)
func NewNamedParticipant(meetingID int, name string) *Participant {
	return &Participant{MeetingID: meetingID, Name: name}
}
