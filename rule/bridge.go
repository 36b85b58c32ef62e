package rule

// BridgeRule trains one bridging magnitude (6, 7, 8 or 9): the heaven bead
// plus an earth remainder moved together. With RequireBlock set, an accepted
// exercise must contain the block on some rod, either as a compound ±target
// move or as consecutive ±5 and ±remainder steps in either order.
type BridgeRule struct {
	base
}

// Kind returns KindBridge.
func (r *BridgeRule) Kind() Kind { return KindBridge }

// Target returns the trained magnitude.
func (r *BridgeRule) Target() int { return r.cfg.target }

// AvailableActions returns the selected magnitudes legal on a rod showing current.
func (r *BridgeRule) AvailableActions(current int, first bool, _ int) []Action {
	return r.directActions(current, first)
}

// ValidateExample applies the shared clauses, then the block requirement.
func (r *BridgeRule) ValidateExample(ex Example) error {
	if err := r.validateCommon(ex); err != nil {
		return err
	}
	if r.cfg.requireBlock && !containsBlock(ex, r.cfg.target, r.cfg.remainder) {
		return rejectf(methodValidate, "no ±%d block (5 with %d)", r.cfg.target, r.cfg.remainder)
	}
	return nil
}
