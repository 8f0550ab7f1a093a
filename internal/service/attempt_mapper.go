package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/rs/zerolog/log"
)

// toAttemptDetail builds the detail view. The per-question review is only
// included once the attempt is completed and test questions are loaded.
func toAttemptDetail(attempt *model.TestAttempt) dto.TestAttemptDetailDTO {
	resp := dto.TestAttemptDetailDTO{
		ID:          attempt.ID,
		TestID:      attempt.TestID,
		TestTitle:   attempt.Test.Title,
		UserID:      attempt.UserID,
		Status:      attempt.Status,
		StartedAt:   attempt.StartedAt,
		SubmittedAt: attempt.SubmittedAt,
		Answers:     attempt.Answers.Data(),
		Flags:       attempt.Flags.Data(),
	}
	if resp.Answers == nil {
		resp.Answers = map[string]grading.Answer{}
	}
	if resp.Flags == nil {
		resp.Flags = map[string]bool{}
	}
	if result, ok := attempt.Result(); ok {
		resp.Result = &result
	}
	if attempt.Finalized() && len(attempt.Test.Questions) > 0 {
		resp.Review = buildReview(attempt.Test.Questions, resp.Answers, resp.Flags)
	}
	return resp
}

func buildReview(questions []model.Question, answers map[string]grading.Answer, flags map[string]bool) []dto.QuestionReviewDTO {
	review := make([]dto.QuestionReviewDTO, 0, len(questions))
	for _, q := range questions {
		gq := q.ForGrading()
		review = append(review, dto.QuestionReviewDTO{
			QuestionKey:   q.QuestionKey,
			Number:        q.Number,
			Section:       q.Section,
			Type:          q.Type,
			UserAnswer:    answers[q.QuestionKey],
			CorrectAnswer: gq.CorrectAnswer,
			Correct:       grading.IsCorrect(gq, answers[q.QuestionKey]),
			Flagged:       flags[q.QuestionKey],
		})
	}
	return review
}

func toAttemptSummary(attempt *model.TestAttempt) (dto.TestAttemptSummaryDTO, error) {
	var summary dto.TestAttemptSummaryDTO
	if err := copier.Copy(&summary, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Error copying attempt to summary DTO")
		return summary, err
	}
	return summary, nil
}

func toTestResponse(test *model.Test) (dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return resp, err
	}
	// Options live in a JSON column and are skipped by copier.
	for i := range resp.Questions {
		if i < len(test.Questions) {
			resp.Questions[i].Options = test.Questions[i].Options.Data()
		}
	}
	return resp, nil
}
