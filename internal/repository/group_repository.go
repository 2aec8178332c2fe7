package repository

import (
	"context"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	WithTx(tx *gorm.DB) GroupRepository
	Create(ctx context.Context, group *model.Group) error
	List(ctx context.Context) ([]model.Group, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Group, error)
	FindByName(ctx context.Context, name string) (*model.Group, error)
	Delete(ctx context.Context, id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) WithTx(tx *gorm.DB) GroupRepository {
	return &groupRepository{db: tx}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return classify(r.db.WithContext(ctx).Create(group).Error, nil, "create group")
}

func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, classify(err, nil, "list groups")
}

// FindByIDs fails with a validation error naming the first missing id.
func (r *groupRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []model.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, classify(err, nil, "find groups")
	}
	found := make(map[uint]bool, len(groups))
	for _, g := range groups {
		found[g.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, apperror.Validation("group %d does not exist", id)
		}
	}
	return groups, nil
}

func (r *groupRepository) FindByName(ctx context.Context, name string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		return nil, classify(err, apperror.NotFound("group %q not found", name), "find group")
	}
	return &group, nil
}

// Delete removes an empty group. A group that still has members or is
// assigned to tests is kept, since dropping the link would open those tests
// to every student.
func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var members int64
		if err := tx.Model(&model.User{}).Where("group_id = ?", id).Count(&members).Error; err != nil {
			return classify(err, nil, "count group members")
		}
		if members > 0 {
			return apperror.Validation("cannot delete a group with attached students")
		}
		var links int64
		if err := tx.Table("test_groups").Where("group_id = ?", id).Count(&links).Error; err != nil {
			return classify(err, nil, "count group tests")
		}
		if links > 0 {
			return apperror.Validation("cannot delete a group that is assigned to tests")
		}
		res := tx.Delete(&model.Group{}, id)
		if res.Error != nil {
			return classify(res.Error, nil, "delete group")
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("group %d not found", id)
		}
		return nil
	})
}
