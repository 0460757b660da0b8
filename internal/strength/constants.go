package strength

type Criterion string

const (
	CriterionLength    Criterion = "length"
	CriterionUppercase Criterion = "uppercase"
	CriterionLowercase Criterion = "lowercase"
	CriterionNumbers   Criterion = "numbers"
	CriterionSpecial   Criterion = "special"
	CriterionNoSpaces  Criterion = "no_spaces"
	CriterionNoCommon  Criterion = "no_common"
)

// Criteria is the fixed evaluation order of all criteria, every
// ordered output of this package follows it
var Criteria = []Criterion{
	CriterionLength,
	CriterionUppercase,
	CriterionLowercase,
	CriterionNumbers,
	CriterionSpecial,
	CriterionNoSpaces,
	CriterionNoCommon,
}

const (
	// MaxScore is the sum of all criterion weights
	MaxScore = 12

	MinimumLength = 8

	SpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

var commonPasswords = []string{
	"password",
	"123456",
	"qwerty",
	"admin",
}

const (
	FeedbackLength    = "Password should be at least 8 characters long"
	FeedbackUppercase = "Add uppercase letters"
	FeedbackLowercase = "Add lowercase letters"
	FeedbackNumbers   = "Add numbers"
	FeedbackSpecial   = "Add special characters"
	FeedbackNoSpaces  = "Remove spaces"
	FeedbackNoCommon  = "Avoid common passwords"
)
