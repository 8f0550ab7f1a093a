package grading

import "fmt"

// matchFunc compares a normalized, non-blank user answer with a normalized,
// non-blank key.
type matchFunc func(key, user Answer) (bool, []Warning)

var (
	tfngTokens = []string{"true", "false", "not given"}
	ynngTokens = []string{"yes", "no", "not given"}
)

// matchers routes a question type to its comparison rule. Types missing from
// the table are graded with matchText.
var matchers = map[QuestionType]matchFunc{
	FillBlank:          matchText,
	ShortAnswer:        matchText,
	SentenceCompletion: matchText,
	MultipleChoice:     matchChoice,
	TrueFalseNotGiven:  matchTokens(tfngTokens),
	YesNoNotGiven:      matchTokens(ynngTokens),
	Matching:           matchPositional,
}

// TokensFor returns the fixed answer vocabulary of a TFNG or YNNG question,
// or nil for other types.
func TokensFor(t QuestionType) []string {
	switch t {
	case TrueFalseNotGiven:
		return append([]string{}, tfngTokens...)
	case YesNoNotGiven:
		return append([]string{}, ynngTokens...)
	}
	return nil
}

// IsCorrect reports whether user answers q correctly.
func IsCorrect(q Question, user Answer) bool {
	ok, _ := Match(q, user)
	return ok
}

// Match is IsCorrect plus the diagnostics raised while comparing. The user
// answer is normalized here, so raw input is accepted as well.
func Match(q Question, user Answer) (bool, []Warning) {
	var warnings []Warning
	fn, known := matchers[q.Type]
	if !known {
		// Unknown types fall back to fill-blank matching.
		fn = matchText
		warnings = append(warnings, Warning{Code: WarnUnknownQuestionType, Detail: string(q.Type)})
	}

	key := Normalize(q.CorrectAnswer)
	if IsBlank(key) {
		warnings = append(warnings, Warning{Code: WarnMissingCorrectAnswer})
		return false, withQuestion(q.ID, warnings)
	}

	user = Normalize(user)
	if IsBlank(user) {
		return false, withQuestion(q.ID, warnings)
	}

	ok, more := fn(key, user)
	return ok, withQuestion(q.ID, append(warnings, more...))
}

func withQuestion(id string, warnings []Warning) []Warning {
	for i := range warnings {
		warnings[i].QuestionID = id
	}
	return warnings
}

func matchText(key, user Answer) (bool, []Warning) {
	u, ok := scalar(user)
	if !ok || u == "" {
		return false, nil
	}
	if !key.IsList {
		return u == key.Text, nil
	}
	for _, alt := range key.Items {
		if alt != "" && u == alt {
			return true, nil
		}
	}
	return false, nil
}

func matchChoice(key, user Answer) (bool, []Warning) {
	if key.IsList && len(key.Items) > 1 {
		if !user.IsList {
			return false, nil
		}
		return sameSet(key.Items, user.Items), nil
	}
	k, _ := scalar(key)
	u, ok := scalar(user)
	if !ok || u == "" {
		return false, nil
	}
	return u == k, nil
}

func matchTokens(vocab []string) matchFunc {
	return func(key, user Answer) (bool, []Warning) {
		k, _ := scalar(key)
		if !contains(vocab, k) {
			return false, []Warning{{Code: WarnKeyOutsideVocabulary, Detail: k}}
		}
		u, ok := scalar(user)
		if !ok || !contains(vocab, u) {
			return false, nil
		}
		return u == k, nil
	}
}

// matchPositional requires one entry per sub-item, compared in order. Partial
// answers get no credit.
func matchPositional(key, user Answer) (bool, []Warning) {
	keys, users := asList(key), asList(user)
	if len(keys) != len(users) {
		return false, []Warning{{
			Code:   WarnMatchingLengthMismatch,
			Detail: fmt.Sprintf("expected %d entries, got %d", len(keys), len(users)),
		}}
	}
	for i := range keys {
		if users[i] == "" || users[i] != keys[i] {
			return false, nil
		}
	}
	return true, nil
}

// scalar reads a single value out of an answer. Single-element lists count.
func scalar(a Answer) (string, bool) {
	if !a.IsList {
		return a.Text, true
	}
	if len(a.Items) == 1 {
		return a.Items[0], true
	}
	return "", false
}

func asList(a Answer) []string {
	if a.IsList {
		return a.Items
	}
	return []string{a.Text}
}

func sameSet(a, b []string) bool {
	set := func(items []string) map[string]struct{} {
		m := make(map[string]struct{}, len(items))
		for _, s := range items {
			if s != "" {
				m[s] = struct{}{}
			}
		}
		return m
	}
	as, bs := set(a), set(b)
	if len(as) != len(bs) {
		return false
	}
	for s := range as {
		if _, ok := bs[s]; !ok {
			return false
		}
	}
	return true
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
