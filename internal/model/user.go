package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// CanAuthor reports whether the role may create tests and read statistics.
func (r Role) CanAuthor() bool {
	return r == RoleTeacher || r == RoleAdmin
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null;default:student"`
	GroupID      *uint     `json:"group_id,omitempty" gorm:"index"`
	Group        *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL;"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
