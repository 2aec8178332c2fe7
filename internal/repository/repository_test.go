package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/database/databasetest"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustUser(t *testing.T, db *gorm.DB, name string, role model.Role, groupID *uint) *model.User {
	t.Helper()
	u := &model.User{Username: name, PasswordHash: "x", Role: role, GroupID: groupID, IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func oneQuestionTest(authorID uint, groups ...model.Group) *model.Test {
	return &model.Test{
		Title:    "Rivers",
		AuthorID: authorID,
		Groups:   groups,
		Questions: []model.Question{
			{Text: "Longest river?", QuestionType: model.QuestionText, CorrectTextAnswer: strPtr("Nile")},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	notFound := apperror.NotFound("missing")

	assert.NoError(t, classify(nil, notFound, "op"))
	assert.Equal(t, notFound, classify(gorm.ErrRecordNotFound, notFound, "op"))
	assert.True(t, errors.Is(classify(gorm.ErrDuplicatedKey, nil, "op"), apperror.ErrValidation))
	assert.True(t, errors.Is(classify(&pgconn.PgError{Code: "23505"}, nil, "op"), apperror.ErrValidation))
	assert.True(t, errors.Is(classify(&pgconn.PgError{Code: "40001"}, nil, "op"), apperror.ErrStorage))
	assert.True(t, errors.Is(classify(errors.New("disk full"), nil, "op"), apperror.ErrStorage))
}

func TestUserRepository(t *testing.T) {
	db := databasetest.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := mustUser(t, db, "ivanov", model.RoleStudent, nil)

	got, err := repo.FindByUsername(ctx, "ivanov")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.FindByID(ctx, u.ID+100)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = repo.Create(ctx, &model.User{Username: "ivanov", PasswordHash: "y", Role: model.RoleStudent})
	assert.True(t, errors.Is(err, apperror.ErrValidation), "duplicate username: got %v", err)
}

func TestGroupRepository_FindByIDs(t *testing.T) {
	db := databasetest.New(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	k := &model.Group{Name: "Группа К"}
	require.NoError(t, repo.Create(ctx, k))

	groups, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, groups)

	groups, err = repo.FindByIDs(ctx, []uint{k.ID})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	_, err = repo.FindByIDs(ctx, []uint{k.ID, k.ID + 1})
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)

	_, err = repo.FindByName(ctx, "nope")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestQuestionRepository_ReplaceForTest(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	author := mustUser(t, db, "teacher", model.RoleTeacher, nil)
	tests := NewTestRepository(db)
	repo := NewQuestionRepository(db)

	test := oneQuestionTest(author.ID)
	require.NoError(t, tests.Create(ctx, test))

	require.NoError(t, repo.ReplaceForTest(ctx, test.ID, []model.Question{
		{Text: "B", QuestionType: model.QuestionSingle, Position: 1, Answers: []model.Answer{{Text: "yes", IsCorrect: true}, {Text: "no"}}},
		{Text: "A", QuestionType: model.QuestionText, Position: 0, CorrectTextAnswer: strPtr("a")},
	}))

	loaded, err := tests.FindWithQuestions(ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, "A", loaded.Questions[0].Text, "ordered by position")
	assert.Equal(t, "B", loaded.Questions[1].Text)
	assert.Len(t, loaded.Questions[1].Answers, 2)

	var answers int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&answers).Error)
	assert.EqualValues(t, 2, answers)

	n, err := repo.CountByTest(ctx, test.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = repo.FindInTest(ctx, test.ID+1, loaded.Questions[0].ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestTestResultRepository_Rows(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	group := &model.Group{Name: "Группа К"}
	require.NoError(t, NewGroupRepository(db).Create(ctx, group))
	author := mustUser(t, db, "teacher", model.RoleTeacher, nil)
	grouped := mustUser(t, db, "ivanov", model.RoleStudent, &group.ID)
	loner := mustUser(t, db, "guest", model.RoleStudent, nil)

	test := oneQuestionTest(author.ID)
	require.NoError(t, NewTestRepository(db).Create(ctx, test))

	repo := NewTestResultRepository(db)
	for _, r := range []model.TestResult{
		{UserID: grouped.ID, TestID: test.ID, Score: 1, TotalQuestions: 1},
		{UserID: loner.ID, TestID: test.ID, Score: 0, TotalQuestions: 1},
		{UserID: grouped.ID, TestID: test.ID, Score: 0, TotalQuestions: 1},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
	}

	n, err := repo.CountByTest(ctx, test.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	rows, err := repo.RowsForTest(ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ivanov", rows[0].Username)
	assert.Equal(t, "Группа К", rows[0].Group)
	assert.Equal(t, "Rivers", rows[0].TestTitle)
	assert.Equal(t, "teacher", rows[0].Author)
	assert.Equal(t, 1, rows[0].Score)
	assert.False(t, rows[0].CompletedAt.IsZero())
	assert.Equal(t, "", rows[1].Group, "no group")

	mine, err := repo.RowsForUser(ctx, grouped.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
