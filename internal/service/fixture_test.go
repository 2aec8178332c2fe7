package service

import (
	"context"
	"testing"

	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/database/databasetest"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/grading"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	tests     repository.TestRepository
	questions repository.QuestionRepository
	results   repository.TestResultRepository
	users     repository.UserRepository
	groups    repository.GroupRepository

	admin   AdminTestService
	submit  TestSubmissionService
	stats   StatisticsService
	catalog UserTestService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.New(t)
	f := &fixture{
		db:        db,
		tests:     repository.NewTestRepository(db),
		questions: repository.NewQuestionRepository(db),
		results:   repository.NewTestResultRepository(db),
		users:     repository.NewUserRepository(db),
		groups:    repository.NewGroupRepository(db),
	}
	f.admin = NewAdminTestService(f.tests, f.questions, f.results, f.groups, db)
	f.submit = NewTestSubmissionService(f.tests, f.results, grading.NewGrader(), db)
	f.stats = NewStatisticsService(f.tests, f.results)
	f.catalog = NewUserTestService(f.tests)
	return f
}

func (f *fixture) group(t *testing.T, name string) uint {
	t.Helper()
	g := &model.Group{Name: name}
	require.NoError(t, f.groups.Create(context.Background(), g))
	return g.ID
}

func (f *fixture) user(t *testing.T, name string, role model.Role, groupID *uint) auth.Identity {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(name+"-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Username: name, PasswordHash: string(hash), Role: role, GroupID: groupID, IsActive: true}
	require.NoError(t, f.users.Create(context.Background(), u))
	return auth.IdentityFromUser(u)
}

func (f *fixture) createTest(t *testing.T, author auth.Identity, req dto.TestCreateDTO) uint {
	t.Helper()
	created, err := f.admin.CreateTest(context.Background(), author, req)
	require.NoError(t, err)
	return created.TestID
}

func (f *fixture) resultCount(t *testing.T, testID uint) int64 {
	t.Helper()
	n, err := f.results.CountByTest(context.Background(), testID)
	require.NoError(t, err)
	return n
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

// capitalsTest: a single choice question (Paris), a multiple choice question
// (Spain, Italy) and a text question (Berlin).
func capitalsTest(groupIDs ...uint) dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Title:       "European capitals",
		Description: "Warm-up quiz",
		GroupIDs:    groupIDs,
		Questions: []dto.QuestionCreateDTO{
			{
				Text:         "Capital of France?",
				QuestionType: "single",
				Answers: []dto.AnswerCreateDTO{
					{Text: "Berlin"}, {Text: "Paris", IsCorrect: true}, {Text: "Rome"},
				},
			},
			{
				Text:         "Which countries are in Europe?",
				QuestionType: "multiple",
				Answers: []dto.AnswerCreateDTO{
					{Text: "Spain", IsCorrect: true}, {Text: "Brazil"}, {Text: "Italy", IsCorrect: true},
				},
			},
			{
				Text:              "Capital of Germany?",
				QuestionType:      "text",
				CorrectTextAnswer: strPtr("Berlin"),
			},
		},
	}
}

// answers builds a submission for a test created from capitalsTest, getting
// the first `correct` questions right and the rest wrong.
func (f *fixture) answers(t *testing.T, testID uint, correct int) []dto.SubmittedAnswerDTO {
	t.Helper()
	test, err := f.tests.FindWithQuestions(context.Background(), testID)
	require.NoError(t, err)

	out := make([]dto.SubmittedAnswerDTO, 0, len(test.Questions))
	for i, q := range test.Questions {
		right := i < correct
		a := dto.SubmittedAnswerDTO{QuestionID: q.ID}
		switch q.QuestionType {
		case model.QuestionSingle:
			for _, opt := range q.Answers {
				if opt.IsCorrect == right {
					a.AnswerID = uintPtr(opt.ID)
					break
				}
			}
		case model.QuestionMultiple:
			a.AnswerIDs = []uint{}
			for _, opt := range q.Answers {
				if opt.IsCorrect {
					a.AnswerIDs = append(a.AnswerIDs, opt.ID)
					if !right {
						break
					}
				}
			}
		case model.QuestionText:
			if right {
				a.TextAnswer = strPtr("  berlin ")
			} else {
				a.TextAnswer = strPtr("Munich")
			}
		}
		out = append(out, a)
	}
	return out
}
