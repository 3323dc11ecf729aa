package models

import (
	"time"
)

// User is a registered phone-number identity. Rows are written once and
// never updated.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Mobile    string    `gorm:"size:10;not null;uniqueIndex" json:"mobile"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Contact is the public projection of a User returned by contact lookups.
type Contact struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// Contact projects the user to its publicly visible fields.
func (u *User) Contact() Contact {
	return Contact{Name: u.Name, Mobile: u.Mobile}
}

// EmailValue returns the stored email or an empty string.
func (u *User) EmailValue() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
