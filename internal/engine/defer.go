package engine

// DeferStack holds the cleanup actions registered by one running case.
type DeferStack struct {
	actions []func()
	sealed  bool
}

// Push registers an action. It returns false when the stack no longer
// accepts actions because draining has started.
func (d *DeferStack) Push(action func()) bool {
	if d.sealed || action == nil {
		return false
	}
	d.actions = append(d.actions, action)
	return true
}

// Len returns the number of pending actions
func (d *DeferStack) Len() int {
	return len(d.actions)
}

// Drain seals the stack and hands each action to call, last registered
// first. Every action is handed out exactly once.
func (d *DeferStack) Drain(call func(action func())) {
	d.sealed = true
	for len(d.actions) > 0 {
		last := len(d.actions) - 1
		action := d.actions[last]
		d.actions = d.actions[:last]
		call(action)
	}
}
