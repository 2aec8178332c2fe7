package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTest_GradesAndStores(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	ctx := context.Background()

	res, err := f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)})
	require.NoError(t, err)
	assert.Equal(t, &dto.SubmitResultDTO{Success: true, CorrectAnswers: 3, TotalQuestions: 3, Percentage: 100}, res)

	res, err = f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 0)})
	require.NoError(t, err)
	assert.Equal(t, 0, res.CorrectAnswers)
	assert.Equal(t, 0, res.Percentage)

	res, err = f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 1)})
	require.NoError(t, err)
	assert.Equal(t, 33, res.Percentage)

	assert.EqualValues(t, 3, f.resultCount(t, testID))
}

func TestSubmitTest_RejectedSubmissionsStoreNothing(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	full := f.answers(t, testID, 3)

	withTextOnChoice := f.answers(t, testID, 3)
	withTextOnChoice[0].TextAnswer = strPtr("Paris")

	tests := []struct {
		name    string
		answers []dto.SubmittedAnswerDTO
	}{
		{name: "missing answer", answers: full[:2]},
		{name: "duplicate answer", answers: []dto.SubmittedAnswerDTO{full[0], full[0], full[2]}},
		{name: "foreign question", answers: []dto.SubmittedAnswerDTO{full[0], full[1], {QuestionID: 9999, TextAnswer: strPtr("x")}}},
		{name: "wrong field for type", answers: withTextOnChoice},
		{name: "empty", answers: []dto.SubmittedAnswerDTO{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.submit.SubmitTest(context.Background(), student, testID, dto.TestSubmitDTO{Answers: tc.answers})
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
		})
	}
	assert.EqualValues(t, 0, f.resultCount(t, testID))
}

func TestSubmitTest_CountMismatchMessage(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest())

	_, err := f.submit.SubmitTest(context.Background(), student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)[:1]})
	require.Error(t, err)
	assert.Equal(t, "all questions must be answered", apperror.PublicMessage(err))
}

func TestSubmitTest_Access(t *testing.T) {
	f := newFixture(t)
	groupK := f.group(t, "Группа К")
	groupZ := f.group(t, "Группа З")
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	otherTeacher := f.user(t, "other", model.RoleTeacher, nil)
	inGroup := f.user(t, "ivanov", model.RoleStudent, &groupK)
	outside := f.user(t, "petrov", model.RoleStudent, &groupZ)
	noGroup := f.user(t, "guest", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest(groupK))
	ctx := context.Background()

	_, err := f.submit.SubmitTest(ctx, inGroup, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 2)})
	require.NoError(t, err)

	denied := map[string]auth.Identity{"other group": outside, "no group": noGroup, "other teacher": otherTeacher}
	for name, who := range denied {
		_, err := f.submit.SubmitTest(ctx, who, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)})
		assert.True(t, errors.Is(err, apperror.ErrForbidden), "%s: got %v", name, err)
	}

	_, err = f.submit.SubmitTest(ctx, teacher, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)})
	assert.NoError(t, err, "the author may try their own test")

	assert.EqualValues(t, 2, f.resultCount(t, testID))
}

func TestSubmitTest_UnknownTest(t *testing.T) {
	f := newFixture(t)
	student := f.user(t, "student", model.RoleStudent, nil)

	_, err := f.submit.SubmitTest(context.Background(), student, 404, dto.TestSubmitDTO{Answers: []dto.SubmittedAnswerDTO{{QuestionID: 1}}})
	assert.True(t, errors.Is(err, apperror.ErrNotFound), "got %v", err)
}

func TestSubmitTest_TestWithoutQuestions(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	empty := &model.Test{Title: "Empty", AuthorID: teacher.UserID}
	require.NoError(t, f.tests.Create(context.Background(), empty))

	_, err := f.submit.SubmitTest(context.Background(), student, empty.ID, dto.TestSubmitDTO{Answers: []dto.SubmittedAnswerDTO{}})
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
	assert.EqualValues(t, 0, f.resultCount(t, empty.ID))
}

func TestSubmitTest_StoreFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	ctx := context.Background()

	require.NoError(t, f.db.Exec(`CREATE TRIGGER reject_results BEFORE INSERT ON test_results
		BEGIN SELECT RAISE(ABORT, 'disk quota exceeded'); END`).Error)

	res, err := f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStorage), "got %v", err)
	assert.Equal(t, apperror.KindStorage, apperror.KindOf(err))
	assert.Equal(t, "internal server error", apperror.PublicMessage(err))
	assert.NotContains(t, apperror.PublicMessage(err), "quota")
	assert.Zero(t, f.resultCount(t, testID))
}
