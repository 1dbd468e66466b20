package validation

import "strings"

// Rule is a constraint every stored task satisfies
type Rule string

const (
	RuleDescriptionRequired Rule = "description_required"
	RuleIDAssigned          Rule = "id_assigned"
)

var ruleMessages = map[Rule]string{
	RuleDescriptionRequired: "description must not be blank",
	RuleIDAssigned:          "id must be assigned by the store",
}

// TaskError lists the rules a description or task broke, in check order
type TaskError struct {
	Broken []Rule
}

func (e *TaskError) Error() string {
	messages := make([]string, 0, len(e.Broken))
	for _, rule := range e.Broken {
		messages = append(messages, ruleMessages[rule])
	}
	return "invalid task: " + strings.Join(messages, "; ")
}

func (e *TaskError) add(rule Rule) {
	e.Broken = append(e.Broken, rule)
}

// orNil returns nil when no rule was broken
func (e *TaskError) orNil() error {
	if len(e.Broken) == 0 {
		return nil
	}
	return e
}
