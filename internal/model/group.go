package model

import "time"

// Group is a class of students. Stored in user_groups.
type Group struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

func (Group) TableName() string {
	return "user_groups"
}
