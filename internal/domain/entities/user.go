package entities

// User represents a team member
type User struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	// Password is stored as provided and never serialized
	Password string `json:"-" gorm:"type:text;not null"`
	Name     string `json:"name" gorm:"type:varchar(255)"`
	Email    string `json:"email" gorm:"type:varchar(255)"`
	Role     string `json:"role" gorm:"type:varchar(100)"`
	Avatar   string `json:"avatar" gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrInvalidUsername
	}
	return nil
}
