package generator

import "fmt"

// Rule names a precondition of accessor synthesis.
type Rule string

const (
	RuleNoAnnotations       Rule = "no-annotations"
	RuleNoVariants          Rule = "no-variants"
	RuleUnitVariant         Rule = "unit-variant"
	RuleCustomNameMultiMode Rule = "custom-name-multi-mode"
	RuleModeNotAllowed      Rule = "mode-not-allowed"
	RuleMutableValueVariant Rule = "mutable-value-variant"
	RuleUnknownQualifier    Rule = "unknown-qualifier"
	RuleBadName             Rule = "bad-name"
)

// Error is a violated synthesis rule. Subject is the offending variant, field or mode.
type Error struct {
	Rule    Rule
	Subject string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

func ruleErr(rule Rule, subject, format string, args ...any) *Error {
	return &Error{Rule: rule, Subject: subject, Message: fmt.Sprintf(format, args...)}
}
