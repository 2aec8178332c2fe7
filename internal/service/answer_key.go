package service

import (
	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/grading"
	"github.com/GanderM1/testforgenew/internal/model"
)

// answerKey converts a test loaded with questions and options into the
// grading engine's key. A stored question type the engine does not know is a
// storage problem, not a learner error.
func answerKey(test *model.Test) (grading.TestKey, error) {
	key := grading.TestKey{TestID: test.ID, Questions: make([]grading.Question, 0, len(test.Questions))}
	for _, q := range test.Questions {
		qt, err := grading.ParseQuestionType(q.QuestionType)
		if err != nil {
			return grading.TestKey{}, apperror.Storage(err, "invalid question stored")
		}
		gq := grading.Question{ID: q.ID, Type: qt}
		if q.CorrectTextAnswer != nil {
			gq.CorrectText = *q.CorrectTextAnswer
		}
		for _, a := range q.Answers {
			gq.Options = append(gq.Options, grading.Option{ID: a.ID, Correct: a.IsCorrect})
		}
		key.Questions = append(key.Questions, gq)
	}
	return key, nil
}

func toResponses(answers []dto.SubmittedAnswerDTO) []grading.Response {
	out := make([]grading.Response, len(answers))
	for i, a := range answers {
		out[i] = grading.Response{
			QuestionID: a.QuestionID,
			AnswerID:   a.AnswerID,
			AnswerIDs:  a.AnswerIDs,
			TextAnswer: a.TextAnswer,
		}
	}
	return out
}

// canTake reports whether the caller may open and submit the test: admins
// and the author always, everyone for general tests, students of an
// assigned group otherwise.
func canTake(viewer auth.Identity, test *model.Test) bool {
	if viewer.CanManage(test.AuthorID) || test.IsGeneral() {
		return true
	}
	return viewer.Role == model.RoleStudent && viewer.GroupID != nil && test.HasGroup(*viewer.GroupID)
}
