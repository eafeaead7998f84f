package models

import "strconv"

type Answer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Content    string `json:"content"`
	UserID     uint   `json:"user_id" gorm:"not null"`
	QuestionID uint   `json:"question_id" gorm:"not null"`

	// Relationships
	User     User     `json:"user,omitempty"`
	Question Question `json:"question,omitempty"`
}

func (a *Answer) RowMap() map[string]string {
	return map[string]string{
		"id":          strconv.FormatUint(uint64(a.ID), 10),
		"content":     a.Content,
		"user_id":     strconv.FormatUint(uint64(a.UserID), 10),
		"question_id": strconv.FormatUint(uint64(a.QuestionID), 10),
	}
}
