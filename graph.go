package rowan

import "github.com/google/uuid"

// Trigger is the event kind that begins execution of an action sequence.
// Values are the strings persisted in the application's scene files.
type Trigger string

const (
	// TriggerStart procedures launch when the simulation starts.
	TriggerStart Trigger = "start"
	// TriggerClick procedures launch when the object is clicked.
	TriggerClick Trigger = "click"
	// TriggerHover is reserved. The edit API creates it empty and never
	// populates it; graphs that carry hover actions still compile normally.
	TriggerHover Trigger = "hover"
)

// Triggers lists all trigger kinds in a stable order.
var Triggers = []Trigger{TriggerStart, TriggerClick, TriggerHover}

// ActionType identifies one declarative operation kind.
type ActionType string

const (
	ActionMove    ActionType = "MOVE"
	ActionRotate  ActionType = "ROTATE"
	ActionScale   ActionType = "SCALE"
	ActionColor   ActionType = "COLOR"
	ActionWait    ActionType = "WAIT"
	ActionVisible ActionType = "VISIBLE"
)

// Action is one declarative step in a BehaviorGraph: a typed operation plus
// its parameters. Params keys depend on Type; missing or malformed values are
// never rejected — the compiler substitutes defaults.
type Action struct {
	ID     string         `json:"id"`
	Type   ActionType     `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// BehaviorGraph is the declarative behavior attached to one scene object: one
// insertion-ordered action list per trigger kind. The order of actions within
// a list is semantically load-bearing (strict sequential execution); the
// system never reorders it — only the edit operations below do, at the user's
// request.
//
// The JSON shape is application state persisted by the surrounding editor,
// not a wire format of this package.
type BehaviorGraph struct {
	Triggers map[Trigger][]Action `json:"triggers"`
}

// NewBehaviorGraph creates a graph with all trigger lists present and empty.
func NewBehaviorGraph() *BehaviorGraph {
	g := &BehaviorGraph{Triggers: make(map[Trigger][]Action, len(Triggers))}
	for _, tr := range Triggers {
		g.Triggers[tr] = []Action{}
	}
	return g
}

// Append adds an action to the end of a trigger's list and returns its
// generated ID.
func (g *BehaviorGraph) Append(tr Trigger, typ ActionType, params map[string]any) string {
	return g.Insert(tr, len(g.Triggers[tr]), typ, params)
}

// Insert adds an action at the given index in a trigger's list and returns
// its generated ID. Panics if index is out of range.
func (g *BehaviorGraph) Insert(tr Trigger, index int, typ ActionType, params map[string]any) string {
	if g.Triggers == nil {
		g.Triggers = make(map[Trigger][]Action)
	}
	list := g.Triggers[tr]
	if index < 0 || index > len(list) {
		panic("rowan: action index out of range")
	}
	a := Action{ID: uuid.NewString(), Type: typ, Params: params}
	list = append(list, Action{})
	copy(list[index+1:], list[index:])
	list[index] = a
	g.Triggers[tr] = list
	return a.ID
}

// Remove deletes the action with the given ID from a trigger's list.
// Returns false if no such action exists.
func (g *BehaviorGraph) Remove(tr Trigger, id string) bool {
	list := g.Triggers[tr]
	for i := range list {
		if list[i].ID == id {
			copy(list[i:], list[i+1:])
			g.Triggers[tr] = list[:len(list)-1]
			return true
		}
	}
	return false
}

// Move reorders the action with the given ID to a new index within its
// trigger's list. Returns false if no such action exists. Panics if index is
// out of range.
func (g *BehaviorGraph) Move(tr Trigger, id string, index int) bool {
	list := g.Triggers[tr]
	if index < 0 || index >= len(list) {
		panic("rowan: action index out of range")
	}
	oldIndex := -1
	for i := range list {
		if list[i].ID == id {
			oldIndex = i
			break
		}
	}
	if oldIndex < 0 {
		return false
	}
	if oldIndex == index {
		return true
	}
	a := list[oldIndex]
	if oldIndex < index {
		copy(list[oldIndex:], list[oldIndex+1:index+1])
	} else {
		copy(list[index+1:], list[index:oldIndex])
	}
	list[index] = a
	return true
}

// Actions returns a trigger's action list. The returned slice MUST NOT be
// mutated by the caller.
func (g *BehaviorGraph) Actions(tr Trigger) []Action {
	return g.Triggers[tr]
}

// Empty reports whether every trigger list is empty. Empty graphs compile to
// no procedures and contribute nothing to a running simulation.
func (g *BehaviorGraph) Empty() bool {
	for _, list := range g.Triggers {
		if len(list) > 0 {
			return false
		}
	}
	return true
}
