package validator

// FieldCheck binds a display name and a live value reference to a rule set.
type FieldCheck struct {
	Name  string
	Value func() string
	Rules []CheckRule
}

// Check reads the value once and evaluates the rules in declaration order.
// The first failing rule's ValidationError is returned; nil means every rule passed.
func (c FieldCheck) Check() error {
	value := c.value()
	for _, cr := range c.Rules {
		if cr == nil {
			continue
		}
		rule := cr(c.Name, value)
		if rule.Check != nil && !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

func (c FieldCheck) checkAll(errs *ValidationErrors) {
	value := c.value()
	for _, cr := range c.Rules {
		if cr == nil {
			continue
		}
		rule := cr(c.Name, value)
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}

func (c FieldCheck) value() string {
	if c.Value == nil {
		return ""
	}
	return c.Value()
}

// CheckGroup aggregates field checks and reports the first failing rule.
type CheckGroup []FieldCheck

// NewCheckGroup creates a check group from the given field checks.
func NewCheckGroup(checks ...FieldCheck) CheckGroup {
	return CheckGroup(checks)
}

// Check returns the first failure across all members, in order, or nil.
func (g CheckGroup) Check() error {
	for _, c := range g {
		if err := c.Check(); err != nil {
			return err
		}
	}
	return nil
}

// CheckAll evaluates every rule of every member and returns all failures
// as ValidationErrors, or nil when nothing failed.
func (g CheckGroup) CheckAll() error {
	var errs ValidationErrors
	for _, c := range g {
		c.checkAll(&errs)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
