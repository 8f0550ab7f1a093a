package grading

import (
	"sort"
)

const defaultSection = 1

// Score grades every question of test against attempt. It is a pure function
// of its inputs: the same pair always produces the same result, and neither
// argument is modified.
//
// A question without a submitted answer counts as incorrect. Questions sharing
// an id are each graded and counted, which inflates Total; the duplication is
// reported as a warning.
func Score(test Test, attempt Attempt) ScoreResult {
	questions := make([]Question, len(test.Questions))
	copy(questions, test.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Number < questions[j].Number
	})

	result := ScoreResult{
		SectionScores: make(map[int]Tally),
		TypeScores:    make(map[string]Tally),
	}

	seen := make(map[string]int, len(questions))
	for _, q := range questions {
		seen[q.ID]++
		if seen[q.ID] == 2 {
			result.Warnings = append(result.Warnings, Warning{
				Code:       WarnDuplicateQuestionID,
				QuestionID: q.ID,
			})
		}

		ok, warnings := Match(q, attempt.Answers[q.ID])
		result.Warnings = append(result.Warnings, warnings...)

		section := q.Section
		if section <= 0 {
			section = defaultSection
		}
		result.SectionScores[section] = count(result.SectionScores[section], ok)
		result.TypeScores[string(q.Type)] = count(result.TypeScores[string(q.Type)], ok)
		result.Total++
		if ok {
			result.Correct++
		}
	}

	var stray []string
	for id := range attempt.Answers {
		if _, ok := seen[id]; !ok {
			stray = append(stray, id)
		}
	}
	sort.Strings(stray)
	for _, id := range stray {
		result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownAnswerKey, QuestionID: id})
	}

	for k, t := range result.SectionScores {
		t.Band = ToBand(t.Correct, t.Total)
		result.SectionScores[k] = t
	}
	for k, t := range result.TypeScores {
		t.Band = ToBand(t.Correct, t.Total)
		result.TypeScores[k] = t
	}
	result.Band = ToBand(result.Correct, result.Total)
	return result
}

func count(t Tally, correct bool) Tally {
	t.Total++
	if correct {
		t.Correct++
	}
	return t
}
