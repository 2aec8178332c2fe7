package repository

import (
	"context"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/model"
	"gorm.io/gorm"
)

// TestScope describes who is listing tests.
type TestScope struct {
	Role    model.Role
	UserID  uint
	GroupID *uint
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindWithQuestions(ctx context.Context, id uint) (*model.Test, error)
	List(ctx context.Context, scope TestScope) ([]model.Test, error)
	ListByGroup(ctx context.Context, groupID uint) ([]model.Test, error)
	UpdateDetails(ctx context.Context, id uint, title, description string) error
	ReplaceGroups(ctx context.Context, test *model.Test, groups []model.Group) error
	Delete(ctx context.Context, id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func testNotFound(id uint) error {
	return apperror.NotFound("test %d not found", id)
}

// Create inserts the test together with its questions, answer options and
// group links.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	err := r.db.WithContext(ctx).Omit("Author").Create(test).Error
	return classify(err, nil, "create test")
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Groups").
		First(&test, id).Error
	if err != nil {
		return nil, classify(err, testNotFound(id), "find test")
	}
	return &test, nil
}

func (r *testRepository) FindWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Groups").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC, questions.id ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&test, id).Error
	if err != nil {
		return nil, classify(err, testNotFound(id), "find test with questions")
	}
	return &test, nil
}

const generalAccess = "NOT EXISTS (SELECT 1 FROM test_groups tg WHERE tg.test_id = tests.id)"

// List returns the tests visible in the given scope: everything for admins,
// own and general tests for teachers, general and group tests for students.
func (r *testRepository) List(ctx context.Context, scope TestScope) ([]model.Test, error) {
	q := r.db.WithContext(ctx).Model(&model.Test{}).
		Preload("Author").
		Preload("Groups")

	switch scope.Role {
	case model.RoleAdmin:
	case model.RoleTeacher:
		q = q.Where("tests.author_id = ? OR "+generalAccess, scope.UserID)
	default:
		if scope.GroupID != nil {
			q = q.Where(generalAccess+" OR EXISTS (SELECT 1 FROM test_groups tg WHERE tg.test_id = tests.id AND tg.group_id = ?)", *scope.GroupID)
		} else {
			q = q.Where(generalAccess)
		}
	}

	var tests []model.Test
	err := q.Order("tests.created_at DESC, tests.id DESC").Find(&tests).Error
	return tests, classify(err, nil, "list tests")
}

func (r *testRepository) ListByGroup(ctx context.Context, groupID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Groups").
		Joins("JOIN test_groups ON test_groups.test_id = tests.id").
		Where("test_groups.group_id = ?", groupID).
		Order("tests.created_at DESC, tests.id DESC").
		Find(&tests).Error
	return tests, classify(err, nil, "list group tests")
}

func (r *testRepository) UpdateDetails(ctx context.Context, id uint, title, description string) error {
	res := r.db.WithContext(ctx).Model(&model.Test{ID: id}).
		Updates(map[string]interface{}{"title": title, "description": description})
	if res.Error != nil {
		return classify(res.Error, nil, "update test")
	}
	if res.RowsAffected == 0 {
		return testNotFound(id)
	}
	return nil
}

// ReplaceGroups sets the test's group links; no groups makes it general.
func (r *testRepository) ReplaceGroups(ctx context.Context, test *model.Test, groups []model.Group) error {
	assoc := r.db.WithContext(ctx).Model(test).Association("Groups")
	var err error
	if len(groups) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(groups)
	}
	return classify(err, nil, "replace test groups")
}

// Delete removes the test with its results, questions, options and group
// links. It is meant to run inside a transaction.
func (r *testRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("test_id = ?", id).Delete(&model.TestResult{}).Error; err != nil {
		return classify(err, nil, "delete test results")
	}
	if err := deleteQuestionsOfTest(db, id); err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM test_groups WHERE test_id = ?", id).Error; err != nil {
		return classify(err, nil, "delete test groups")
	}
	res := db.Delete(&model.Test{}, id)
	if res.Error != nil {
		return classify(res.Error, nil, "delete test")
	}
	if res.RowsAffected == 0 {
		return testNotFound(id)
	}
	return nil
}
