package model

import "time"

// Test is a named set of ordered questions. An empty Groups list means the
// test is open to every student.
type Test struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	AuthorID    uint       `json:"author_id" gorm:"not null;index"`
	Author      User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Groups      []Group    `json:"groups,omitempty" gorm:"many2many:test_groups;constraint:OnDelete:CASCADE;"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsGeneral reports whether the test is visible to all students.
func (t *Test) IsGeneral() bool {
	return len(t.Groups) == 0
}

// HasGroup reports whether the test is assigned to the given group.
func (t *Test) HasGroup(groupID uint) bool {
	for _, g := range t.Groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}
