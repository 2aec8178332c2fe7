package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTest_StoresQuestionsInOrder(t *testing.T) {
	f := newFixture(t)
	groupID := f.group(t, "Группа К")
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)

	testID := f.createTest(t, teacher, capitalsTest(groupID))

	test, err := f.tests.FindWithQuestions(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, "European capitals", test.Title)
	assert.Equal(t, teacher.UserID, test.AuthorID)
	require.Len(t, test.Groups, 1)
	assert.Equal(t, groupID, test.Groups[0].ID)
	require.Len(t, test.Questions, 3)
	assert.Equal(t, model.QuestionSingle, test.Questions[0].QuestionType)
	assert.Equal(t, model.QuestionMultiple, test.Questions[1].QuestionType)
	assert.Equal(t, model.QuestionText, test.Questions[2].QuestionType)
	assert.Len(t, test.Questions[0].Answers, 3)
	require.NotNil(t, test.Questions[2].CorrectTextAnswer)
	assert.Equal(t, "Berlin", *test.Questions[2].CorrectTextAnswer)
}

func TestCreateTest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.TestCreateDTO)
	}{
		{name: "short title", mutate: func(r *dto.TestCreateDTO) { r.Title = "  ab  " }},
		{name: "no questions", mutate: func(r *dto.TestCreateDTO) { r.Questions = nil }},
		{name: "blank question text", mutate: func(r *dto.TestCreateDTO) { r.Questions[0].Text = " " }},
		{name: "unknown type", mutate: func(r *dto.TestCreateDTO) { r.Questions[0].QuestionType = "essay" }},
		{name: "text without answer", mutate: func(r *dto.TestCreateDTO) { r.Questions[2].CorrectTextAnswer = strPtr("  ") }},
		{name: "choice without options", mutate: func(r *dto.TestCreateDTO) { r.Questions[1].Answers = nil }},
		{name: "choice without correct option", mutate: func(r *dto.TestCreateDTO) {
			r.Questions[1].Answers = []dto.AnswerCreateDTO{{Text: "a"}, {Text: "b"}}
		}},
		{name: "blank option text", mutate: func(r *dto.TestCreateDTO) { r.Questions[0].Answers[0].Text = "" }},
		{name: "single with two correct", mutate: func(r *dto.TestCreateDTO) { r.Questions[0].Answers[0].IsCorrect = true }},
		{name: "unknown group", mutate: func(r *dto.TestCreateDTO) { r.GroupIDs = []uint{777} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			teacher := f.user(t, "teacher", model.RoleTeacher, nil)
			req := capitalsTest()
			tc.mutate(&req)

			_, err := f.admin.CreateTest(context.Background(), teacher, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)

			var n int64
			require.NoError(t, f.db.Model(&model.Test{}).Count(&n).Error)
			assert.Zero(t, n)
		})
	}
}

func TestCreateTest_StudentsCannotAuthor(t *testing.T) {
	f := newFixture(t)
	student := f.user(t, "student", model.RoleStudent, nil)

	_, err := f.admin.CreateTest(context.Background(), student, capitalsTest())
	assert.True(t, errors.Is(err, apperror.ErrForbidden), "got %v", err)
}

func TestUpdateTest(t *testing.T) {
	f := newFixture(t)
	groupID := f.group(t, "Группа К")
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	testID := f.createTest(t, teacher, capitalsTest(groupID))
	ctx := context.Background()

	title := "  Capitals of Europe "
	noGroups := []uint{}
	replacement := capitalsTest().Questions[:1]

	detail, err := f.admin.UpdateTest(ctx, teacher, testID, dto.TestUpdateDTO{
		Title:     &title,
		GroupIDs:  &noGroups,
		Questions: replacement,
	})
	require.NoError(t, err)
	assert.Equal(t, "Capitals of Europe", detail.Title)
	assert.Equal(t, "Warm-up quiz", detail.Description)
	assert.Empty(t, detail.Groups)
	require.Len(t, detail.Questions, 1)
	require.Len(t, detail.Questions[0].Answers, 3)
	assert.NotNil(t, detail.Questions[0].Answers[0].IsCorrect)
}

func TestUpdateTest_QuestionsFrozenOnceResultsExist(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	ctx := context.Background()

	_, err := f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 3)})
	require.NoError(t, err)

	title := "Renamed test"
	_, err = f.admin.UpdateTest(ctx, teacher, testID, dto.TestUpdateDTO{
		Title:     &title,
		Questions: capitalsTest().Questions[:1],
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)

	test, err := f.tests.FindWithQuestions(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, "European capitals", test.Title, "the rename must be rolled back")
	assert.Len(t, test.Questions, 3)

	err = f.admin.DeleteQuestion(ctx, teacher, testID, test.Questions[0].ID)
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)

	detail, err := f.admin.UpdateTest(ctx, teacher, testID, dto.TestUpdateDTO{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, detail.Title)
}

func TestUpdateTest_OnlyAuthorOrAdmin(t *testing.T) {
	f := newFixture(t)
	author := f.user(t, "author", model.RoleTeacher, nil)
	other := f.user(t, "other", model.RoleTeacher, nil)
	admin := f.user(t, "admin", model.RoleAdmin, nil)
	testID := f.createTest(t, author, capitalsTest())
	ctx := context.Background()
	title := "Hijacked"

	_, err := f.admin.UpdateTest(ctx, other, testID, dto.TestUpdateDTO{Title: &title})
	assert.True(t, errors.Is(err, apperror.ErrForbidden), "got %v", err)

	err = f.admin.DeleteTest(ctx, other, testID)
	assert.True(t, errors.Is(err, apperror.ErrForbidden), "got %v", err)

	_, err = f.admin.UpdateTest(ctx, admin, testID, dto.TestUpdateDTO{Title: &title})
	assert.NoError(t, err)

	_, err = f.admin.UpdateTest(ctx, admin, 9999, dto.TestUpdateDTO{Title: &title})
	assert.True(t, errors.Is(err, apperror.ErrNotFound), "got %v", err)
}

func TestDeleteTest_RemovesResults(t *testing.T) {
	f := newFixture(t)
	groupID := f.group(t, "Группа К")
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	student := f.user(t, "student", model.RoleStudent, &groupID)
	testID := f.createTest(t, teacher, capitalsTest(groupID))
	ctx := context.Background()

	_, err := f.submit.SubmitTest(ctx, student, testID, dto.TestSubmitDTO{Answers: f.answers(t, testID, 2)})
	require.NoError(t, err)

	require.NoError(t, f.admin.DeleteTest(ctx, teacher, testID))

	_, err = f.tests.FindByID(ctx, testID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.EqualValues(t, 0, f.resultCount(t, testID))

	var questions, answers int64
	require.NoError(t, f.db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, f.db.Model(&model.Answer{}).Count(&answers).Error)
	assert.Zero(t, questions)
	assert.Zero(t, answers)

	mine, err := f.stats.MyStatistics(ctx, student)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestDeleteQuestion(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	otherID := f.createTest(t, teacher, capitalsTest())
	ctx := context.Background()

	test, err := f.tests.FindWithQuestions(ctx, testID)
	require.NoError(t, err)
	other, err := f.tests.FindWithQuestions(ctx, otherID)
	require.NoError(t, err)

	err = f.admin.DeleteQuestion(ctx, teacher, testID, other.Questions[0].ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound), "question of another test: got %v", err)

	require.NoError(t, f.admin.DeleteQuestion(ctx, teacher, testID, test.Questions[0].ID))

	test, err = f.tests.FindWithQuestions(ctx, testID)
	require.NoError(t, err)
	assert.Len(t, test.Questions, 2)
}

func TestDeleteQuestion_KeepsLastQuestion(t *testing.T) {
	f := newFixture(t)
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	testID := f.createTest(t, teacher, capitalsTest())
	ctx := context.Background()

	test, err := f.tests.FindWithQuestions(ctx, testID)
	require.NoError(t, err)
	require.Len(t, test.Questions, 3)

	require.NoError(t, f.admin.DeleteQuestion(ctx, teacher, testID, test.Questions[0].ID))
	require.NoError(t, f.admin.DeleteQuestion(ctx, teacher, testID, test.Questions[1].ID))

	last := test.Questions[2].ID
	err = f.admin.DeleteQuestion(ctx, teacher, testID, last)
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
	assert.Equal(t, "a test must contain at least one question", apperror.PublicMessage(err))

	test, err = f.tests.FindWithQuestions(ctx, testID)
	require.NoError(t, err)
	require.Len(t, test.Questions, 1)
	assert.Equal(t, last, test.Questions[0].ID)
}

func TestListGroupTests(t *testing.T) {
	f := newFixture(t)
	groupK := f.group(t, "Группа К")
	groupZ := f.group(t, "Группа З")
	teacher := f.user(t, "teacher", model.RoleTeacher, nil)
	inK := f.createTest(t, teacher, capitalsTest(groupK))
	f.createTest(t, teacher, capitalsTest(groupZ))
	f.createTest(t, teacher, capitalsTest())

	tests, err := f.admin.ListGroupTests(context.Background(), groupK)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, inK, tests[0].ID)
	assert.Equal(t, "teacher", tests[0].Author)
	assert.Equal(t, []dto.GroupDTO{{ID: groupK, Name: "Группа К"}}, tests[0].Groups)
}
