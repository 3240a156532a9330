package entities

// Default action item status
const ActionItemStatusNotStarted = "Not Started"

// ActionItem is a task extracted from, or added to, a meeting.
// Assignee is a display name, not a user reference.
type ActionItem struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	MeetingID int    `json:"meetingId" gorm:"not null;index"`
	Task      string `json:"task" gorm:"type:text;not null"`
	Assignee  string `json:"assignee" gorm:"type:text;not null"`
	DueDate   string `json:"dueDate" gorm:"column:due_date;type:text;not null"`
	Status    string `json:"status" gorm:"type:text;default:'Not Started'"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates an action item with default status
func NewActionItem(meetingID int, task, assignee, dueDate string) *ActionItem {
	return &ActionItem{
		MeetingID: meetingID,
		Task:      task,
		Assignee:  assignee,
		DueDate:   dueDate,
		Status:    ActionItemStatusNotStarted,
	}
}

// ActionItemPatch is a partial action item update
type ActionItemPatch struct {
	MeetingID *int
	Task      *string
	Assignee  *string
	DueDate   *string
	Status    *string
	Completed *bool
}

// Apply merges the patch into the action item
func (p ActionItemPatch) Apply(a *ActionItem) {
	if p.MeetingID != nil {
		a.MeetingID = *p.MeetingID
	}
	if p.Task != nil {
		a.Task = *p.Task
	}
	if p.Assignee != nil {
		a.Assignee = *p.Assignee
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Completed != nil {
		a.Completed = *p.Completed
	}
}
