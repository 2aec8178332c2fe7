package service

import (
	"context"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/grading"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const minTitleLength = 3

// AdminTestService is the authoring side of tests, used by teachers and
// admins.
type AdminTestService interface {
	CreateTest(ctx context.Context, viewer auth.Identity, req dto.TestCreateDTO) (*dto.TestCreatedDTO, error)
	UpdateTest(ctx context.Context, viewer auth.Identity, testID uint, req dto.TestUpdateDTO) (*dto.TestDetailDTO, error)
	DeleteTest(ctx context.Context, viewer auth.Identity, testID uint) error
	DeleteQuestion(ctx context.Context, viewer auth.Identity, testID, questionID uint) error
	ListGroupTests(ctx context.Context, groupID uint) ([]dto.TestSummaryDTO, error)
}

type adminTestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.TestResultRepository
	groupRepo    repository.GroupRepository
	db           *gorm.DB
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.TestResultRepository,
	groupRepo repository.GroupRepository,
	db *gorm.DB,
) AdminTestService {
	return &adminTestService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		groupRepo:    groupRepo,
		db:           db,
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if len([]rune(title)) < minTitleLength {
		return "", apperror.Validation("test title is required (at least %d characters)", minTitleLength)
	}
	return title, nil
}

// buildQuestions validates the authored questions and turns them into
// models, keeping their order.
func buildQuestions(in []dto.QuestionCreateDTO) ([]model.Question, error) {
	if len(in) == 0 {
		return nil, apperror.Validation("a test must contain at least one question")
	}
	out := make([]model.Question, 0, len(in))
	for i, q := range in {
		n := i + 1
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return nil, apperror.Validation("question %d: text is required", n)
		}
		typeName := q.QuestionType
		if typeName == "" {
			typeName = string(grading.Single)
		}
		qt, err := grading.ParseQuestionType(typeName)
		if err != nil {
			return nil, apperror.Validation("question %d: %v", n, err)
		}

		question := model.Question{Text: text, QuestionType: string(qt), Position: i}
		switch qt {
		case grading.Text:
			if q.CorrectTextAnswer == nil || strings.TrimSpace(*q.CorrectTextAnswer) == "" {
				return nil, apperror.Validation("question %d: correct text answer is required", n)
			}
			if len(q.Answers) > 0 {
				return nil, apperror.Validation("question %d: text questions have no answer options", n)
			}
			answer := strings.TrimSpace(*q.CorrectTextAnswer)
			question.CorrectTextAnswer = &answer
		case grading.Single, grading.Multiple:
			if len(q.Answers) == 0 {
				return nil, apperror.Validation("question %d: at least one answer option is required", n)
			}
			correct := 0
			for j, a := range q.Answers {
				answerText := strings.TrimSpace(a.Text)
				if answerText == "" {
					return nil, apperror.Validation("question %d, answer %d: text is required", n, j+1)
				}
				if a.IsCorrect {
					correct++
				}
				question.Answers = append(question.Answers, model.Answer{Text: answerText, IsCorrect: a.IsCorrect})
			}
			if correct == 0 {
				return nil, apperror.Validation("question %d: at least one answer must be correct", n)
			}
			if qt == grading.Single && correct > 1 {
				return nil, apperror.Validation("question %d: a single choice question must have exactly one correct answer", n)
			}
		}
		out = append(out, question)
	}
	return out, nil
}

func (s *adminTestService) CreateTest(ctx context.Context, viewer auth.Identity, req dto.TestCreateDTO) (*dto.TestCreatedDTO, error) {
	if !viewer.Role.CanAuthor() {
		return nil, apperror.Forbidden("teacher or admin role required")
	}
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.FindByIDs(ctx, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	test := model.Test{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		AuthorID:    viewer.UserID,
		Groups:      groups,
		Questions:   questions,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.testRepo.WithTx(tx).Create(ctx, &test)
	})
	if err != nil {
		log.Error().Err(err).Uint("authorID", viewer.UserID).Msg("CreateTest: failed to store test")
		return nil, apperror.Storage(err, "create test")
	}

	log.Info().Uint("testID", test.ID).Uint("authorID", viewer.UserID).Int("questions", len(questions)).Msg("Test created")
	return &dto.TestCreatedDTO{Success: true, TestID: test.ID, Message: "test created"}, nil
}

// UpdateTest applies the fields present in req. Questions of a test that
// already has results cannot be replaced, since stored scores refer to them.
func (s *adminTestService) UpdateTest(ctx context.Context, viewer auth.Identity, testID uint, req dto.TestUpdateDTO) (*dto.TestDetailDTO, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		test, err := tests.FindByID(ctx, testID)
		if err != nil {
			return err
		}
		if !viewer.CanManage(test.AuthorID) {
			return apperror.Forbidden("no rights to edit test %d", testID)
		}

		if req.Title != nil || req.Description != nil {
			title, description := test.Title, test.Description
			if req.Title != nil {
				if title, err = validateTitle(*req.Title); err != nil {
					return err
				}
			}
			if req.Description != nil {
				description = strings.TrimSpace(*req.Description)
			}
			if err := tests.UpdateDetails(ctx, testID, title, description); err != nil {
				return err
			}
		}

		if req.GroupIDs != nil {
			groups, err := s.groupRepo.WithTx(tx).FindByIDs(ctx, *req.GroupIDs)
			if err != nil {
				return err
			}
			if err := tests.ReplaceGroups(ctx, test, groups); err != nil {
				return err
			}
		}

		if req.Questions != nil {
			questions, err := buildQuestions(req.Questions)
			if err != nil {
				return err
			}
			n, err := s.resultRepo.WithTx(tx).CountByTest(ctx, testID)
			if err != nil {
				return err
			}
			if n > 0 {
				return apperror.Validation("questions of a test with existing results cannot be changed")
			}
			if err := s.questionRepo.WithTx(tx).ReplaceForTest(ctx, testID, questions); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		err = apperror.Storage(err, "update test")
		if apperror.KindOf(err) == apperror.KindStorage {
			log.Error().Err(err).Uint("testID", testID).Msg("UpdateTest: transaction rolled back")
		}
		return nil, err
	}

	updated, err := s.testRepo.FindWithQuestions(ctx, testID)
	if err != nil {
		return nil, err
	}
	return toDetail(updated, true), nil
}

func (s *adminTestService) DeleteTest(ctx context.Context, viewer auth.Identity, testID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		test, err := tests.FindByID(ctx, testID)
		if err != nil {
			return err
		}
		if !viewer.CanManage(test.AuthorID) {
			return apperror.Forbidden("no rights to delete test %d", testID)
		}
		return tests.Delete(ctx, testID)
	})
	if err != nil {
		return apperror.Storage(err, "delete test")
	}
	log.Info().Uint("testID", testID).Uint("userID", viewer.UserID).Msg("Test deleted")
	return nil
}

func (s *adminTestService) DeleteQuestion(ctx context.Context, viewer auth.Identity, testID, questionID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		test, err := s.testRepo.WithTx(tx).FindByID(ctx, testID)
		if err != nil {
			return err
		}
		if !viewer.CanManage(test.AuthorID) {
			return apperror.Forbidden("no rights to edit test %d", testID)
		}
		questions := s.questionRepo.WithTx(tx)
		if _, err := questions.FindInTest(ctx, testID, questionID); err != nil {
			return err
		}
		n, err := s.resultRepo.WithTx(tx).CountByTest(ctx, testID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperror.Validation("questions of a test with existing results cannot be deleted")
		}
		left, err := questions.CountByTest(ctx, testID)
		if err != nil {
			return err
		}
		if left <= 1 {
			return apperror.Validation("a test must contain at least one question")
		}
		return questions.Delete(ctx, questionID)
	})
	return apperror.Storage(err, "delete question")
}

func (s *adminTestService) ListGroupTests(ctx context.Context, groupID uint) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toSummaries(tests), nil
}
