package grading

// QuestionType is the declared answer format of a question.
type QuestionType string

const (
	FillBlank          QuestionType = "fill-blank"
	MultipleChoice     QuestionType = "multiple-choice"
	Matching           QuestionType = "matching"
	TrueFalseNotGiven  QuestionType = "true-false-not-given"
	YesNoNotGiven      QuestionType = "yes-no-not-given"
	SentenceCompletion QuestionType = "sentence-completion"
	ShortAnswer        QuestionType = "short-answer"
)

// QuestionTypes lists every type the matcher knows, in display order.
var QuestionTypes = []QuestionType{
	FillBlank, MultipleChoice, Matching, TrueFalseNotGiven,
	YesNoNotGiven, SentenceCompletion, ShortAnswer,
}

// Known reports whether t has a dedicated matcher.
func (t QuestionType) Known() bool {
	_, ok := matchers[t]
	return ok
}

// Question is the minimal view of a question needed for grading.
type Question struct {
	ID            string
	Number        int
	Section       int // 0 means the test has no explicit sectioning
	Type          QuestionType
	CorrectAnswer Answer
}

// Test is an answer key: the ordered set of questions of one test.
type Test struct {
	ID        uint
	Questions []Question
}

// Attempt carries a user's submitted answers keyed by question id.
type Attempt struct {
	ID      uint
	Answers map[string]Answer
	Flags   map[string]bool
}

// Tally is a correct/total counter with the band it converts to.
type Tally struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Band    float64 `json:"band"`
}

// ScoreResult is derived from a Test and an Attempt and never stored on its own.
type ScoreResult struct {
	Correct       int              `json:"correct"`
	Total         int              `json:"total"`
	SectionScores map[int]Tally    `json:"section_scores"`
	TypeScores    map[string]Tally `json:"type_scores"`
	Band          float64          `json:"band"`
	Warnings      []Warning        `json:"warnings,omitempty"`
}

// Warning codes reported alongside a ScoreResult. None of them stops scoring.
const (
	WarnDuplicateQuestionID    = "duplicate_question_id"
	WarnMissingCorrectAnswer   = "missing_correct_answer"
	WarnMatchingLengthMismatch = "matching_length_mismatch"
	WarnUnknownQuestionType    = "unknown_question_type"
	WarnUnknownAnswerKey       = "unknown_answer_key"
	WarnKeyOutsideVocabulary   = "key_outside_vocabulary"
)

// Warning is a non-fatal data-integrity diagnostic.
type Warning struct {
	Code       string `json:"code"`
	QuestionID string `json:"question_id,omitempty"`
	Detail     string `json:"detail,omitempty"`
}
