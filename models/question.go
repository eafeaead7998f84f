package models

import "strconv"

type Question struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"size:100;not null"`
	Content string `json:"content"`
	UserID  uint   `json:"user_id" gorm:"not null"`

	// Relationships
	User    User     `json:"user,omitempty"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

func (q *Question) RowMap() map[string]string {
	return map[string]string{
		"id":      strconv.FormatUint(uint64(q.ID), 10),
		"title":   q.Title,
		"content": q.Content,
		"user_id": strconv.FormatUint(uint64(q.UserID), 10),
	}
}
