package hier

// LevelHandle sits between a BoxLevel and everything that depends on the
// level's current identity. Dependents retain the handle instead of the
// level itself and call IsAttached before trusting derived data: when the
// level changes in a way that invalidates dependents (re-initialization,
// clearing), it detaches the handle, and every dependent's next check
// fails.
//
// A handle is created only by its BoxLevel, and only the level detaches
// it. There is exactly one live handle per level epoch; handles are never
// copied or re-attached. Detachment is terminal: the handle object stays
// queryable afterwards and IsAttached keeps answering false.
type LevelHandle struct {
	level *BoxLevel
}

// newLevelHandle is the only construction path. Only BoxLevel allocates
// handles.
func newLevelHandle(level *BoxLevel) *LevelHandle {
	return &LevelHandle{level: level}
}

// IsAttached reports whether the handle is still attached to its level.
// It is always safe to call, attached or not.
func (h *LevelHandle) IsAttached() bool {
	return h.level != nil
}

// Level returns the attached BoxLevel. It panics if the handle has been
// detached: dereferencing a detached handle is a bug in the caller, which
// must check IsAttached first.
func (h *LevelHandle) Level() *BoxLevel {
	if h.level == nil {
		panic("hier: Level called on detached LevelHandle")
	}
	return h.level
}

// detach severs the handle from its level. Only the level that created
// the handle calls this, and it does so before any change that would
// invalidate dependent data. Idempotent; once detached the handle never
// re-attaches.
func (h *LevelHandle) detach() {
	h.level = nil
}
