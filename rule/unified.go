package rule

// UnifiedRule offers every selected magnitude with no technique requirement.
// Magnitudes 6–9 are realized through their bridging formula.
type UnifiedRule struct {
	base
}

// Kind returns KindUnified.
func (r *UnifiedRule) Kind() Kind { return KindUnified }

// AvailableActions returns the selected magnitudes legal on a rod showing current.
func (r *UnifiedRule) AvailableActions(current int, first bool, _ int) []Action {
	return r.directActions(current, first)
}

// ValidateExample applies the shared acceptance clauses.
func (r *UnifiedRule) ValidateExample(ex Example) error {
	return r.validateCommon(ex)
}
