package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveUp             // Up arrow
	ActionMoveDown           // Down arrow
	ActionMoveLeft           // Left arrow
	ActionMoveRight          // Right arrow
	ActionAttackUp           // W
	ActionAttackDown         // S
	ActionAttackLeft         // A
	ActionAttackRight        // D
	ActionPause              // Space - pause/unpause, acknowledge game over
	ActionConfirm            // Enter - acknowledge game over
	ActionCancel             // Escape - abandon a paused run
	ActionLevel1             // 1 - start level 1
	ActionLevel2             // 2 - start level 2
	ActionLevel3             // 3 - start level 3
	ActionQuit               // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionMoveUp:      "MoveUp",
	ActionMoveDown:    "MoveDown",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionAttackUp:    "AttackUp",
	ActionAttackDown:  "AttackDown",
	ActionAttackLeft:  "AttackLeft",
	ActionAttackRight: "AttackRight",
	ActionPause:       "Pause",
	ActionConfirm:     "Confirm",
	ActionCancel:      "Cancel",
	ActionLevel1:      "Level1",
	ActionLevel2:      "Level2",
	ActionLevel3:      "Level3",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMove reports whether the action is one of the four movement directions.
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// IsAttack reports whether the action is one of the four attack directions.
func (a Action) IsAttack() bool {
	return a >= ActionAttackUp && a <= ActionAttackRight
}

// LevelNumber returns 1..3 for the level-select actions and 0 otherwise.
func (a Action) LevelNumber() int {
	if a >= ActionLevel1 && a <= ActionLevel3 {
		return int(a-ActionLevel1) + 1
	}
	return 0
}

// InputFrame is the input consumed by one simulation tick.
type InputFrame struct {
	// Actions holds the keys pressed since the previous tick (edge triggered).
	Actions map[Action]bool

	// Held holds keys that are currently down.
	Held map[Action]bool

	// Directions lists held movement keys, most recently pressed first.
	Directions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Holding returns true if the key behind the action is down.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a]
}

// Direction returns the most recently pressed movement key still held.
func (f InputFrame) Direction() (Action, bool) {
	if len(f.Directions) == 0 {
		return ActionNone, false
	}
	return f.Directions[0], true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Directions = f.Directions[:0]
}

// InputState tracks which keys are down across ticks.
//
// Terminals only report key presses, so a held key is one that was pressed (or
// auto-repeated) within the hold window. Times are in milliseconds on any
// monotonic clock chosen by the caller.
type InputState struct {
	pressed  map[Action]bool
	lastSeen map[Action]int64
	order    []Action // held movement keys, most recent first
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{
		pressed:  make(map[Action]bool),
		lastSeen: make(map[Action]int64),
	}
}

// Press records a key press (or auto-repeat) at time now.
func (s *InputState) Press(a Action, now int64) {
	if a == ActionNone {
		return
	}
	s.pressed[a] = true
	if _, held := s.lastSeen[a]; !held && a.IsMove() {
		s.order = append([]Action{a}, s.order...)
	}
	s.lastSeen[a] = now
}

// Release marks a key as no longer held.
func (s *InputState) Release(a Action) {
	delete(s.lastSeen, a)
	for i, d := range s.order {
		if d == a {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// IsHeld reports whether the key is currently held.
func (s *InputState) IsHeld(a Action) bool {
	_, ok := s.lastSeen[a]
	return ok
}

// Expire releases every key not refreshed within window ms of now.
func (s *InputState) Expire(now, window int64) {
	for a, seen := range s.lastSeen {
		if now-seen > window {
			s.Release(a)
		}
	}
}

// Reset releases all keys and drops pending presses.
func (s *InputState) Reset() {
	clear(s.pressed)
	clear(s.lastSeen)
	s.order = s.order[:0]
}

// Frame builds the input for the next tick and consumes the pending presses.
func (s *InputState) Frame() InputFrame {
	f := NewInputFrame()
	for a := range s.pressed {
		f.Actions[a] = true
	}
	for a := range s.lastSeen {
		f.Held[a] = true
	}
	f.Directions = append([]Action(nil), s.order...)
	clear(s.pressed)
	return f
}
