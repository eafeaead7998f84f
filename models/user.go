package models

import "strconv"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:UserID"`
	Answers   []Answer   `json:"answers,omitempty" gorm:"foreignKey:UserID"`
}

// RowMap renders the row with every column as a string, the shape all
// resource responses use.
func (u *User) RowMap() map[string]string {
	return map[string]string{
		"id":       strconv.FormatUint(uint64(u.ID), 10),
		"username": u.Username,
	}
}
