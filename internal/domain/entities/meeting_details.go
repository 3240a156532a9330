package entities

// MeetingWithDetails is the read model of a meeting joined with its children
type MeetingWithDetails struct {
	Meeting
	Decisions    []Decision   `json:"decisions"`
	ActionItems  []ActionItem `json:"actionItems"`
	Participants []string     `json:"participants"`
}
