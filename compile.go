package rowan

// OpKind identifies one compiled operation variant. The set is closed: the
// runtime executes ops by switching on the kind, never by evaluating
// generated code.
type OpKind uint8

const (
	// OpNone is a no-op. Unrecognized action types compile to it so that a
	// malformed action never aborts compilation of its siblings.
	OpNone OpKind = iota
	// OpMove offsets one position component by Amount over 30 eased steps.
	OpMove
	// OpRotate offsets one rotation component by Amount over 30 eased steps.
	OpRotate
	// OpScale sets a uniform scale factor instantly.
	OpScale
	// OpColor sets the object color instantly.
	OpColor
	// OpWait suspends for Seconds of real time.
	OpWait
	// OpVisible sets object visibility instantly.
	OpVisible
	// OpMoveTo moves all three position components to Target linearly over
	// Seconds. No action type produces it; it exists for hand-built
	// procedures (see Procedure.MoveTo).
	OpMoveTo
)

// Op is one compiled operation. Which fields are meaningful depends on Kind;
// the rest are zero.
type Op struct {
	Kind    OpKind
	Axis    Axis    // OpMove, OpRotate
	Amount  float64 // OpMove, OpRotate: relative offset
	Factor  float64 // OpScale: uniform scale factor
	Color   Color   // OpColor
	Seconds float64 // OpWait, OpMoveTo: duration
	Visible bool    // OpVisible
	Target  Vec3    // OpMoveTo: absolute destination
}

// Procedure is the compiled, executable form of one trigger's action sequence
// for one object. Ops run in strict sequential order: op n+1 does not begin
// until op n has fully resolved, including any suspension it performs.
type Procedure struct {
	ObjectID string
	Trigger  Trigger
	Ops      []Op
}

// MoveTo appends an OpMoveTo to a hand-built procedure. Seconds <= 0 applies
// the target instantly.
func (p *Procedure) MoveTo(target Vec3, seconds float64) *Procedure {
	p.Ops = append(p.Ops, Op{Kind: OpMoveTo, Target: target, Seconds: seconds})
	return p
}

// Compile translates one object's BehaviorGraph into executable procedures,
// one per non-empty trigger. It is a pure function of the graph and never
// fails: missing or malformed parameters are substituted with their defaults
// and unknown action types become no-ops.
//
// Defaults per action type:
//
//	MOVE    axis="x"  amount=1
//	ROTATE  axis="y"  amount=90
//	SCALE   scale=1.5
//	COLOR   color="#ff0000"
//	WAIT    seconds=1
//	VISIBLE visible=false
func Compile(objectID string, g *BehaviorGraph) map[Trigger]*Procedure {
	out := make(map[Trigger]*Procedure)
	if g == nil {
		return out
	}
	for _, tr := range Triggers {
		actions := g.Triggers[tr]
		if len(actions) == 0 {
			continue
		}
		proc := &Procedure{
			ObjectID: objectID,
			Trigger:  tr,
			Ops:      make([]Op, len(actions)),
		}
		for i, a := range actions {
			proc.Ops[i] = compileAction(a)
		}
		out[tr] = proc
	}
	return out
}

// compileAction translates a single action, applying parameter defaults.
func compileAction(a Action) Op {
	switch a.Type {
	case ActionMove:
		return Op{
			Kind:   OpMove,
			Axis:   paramAxis(a.Params, "axis", AxisX),
			Amount: paramFloat(a.Params, "amount", 1),
		}
	case ActionRotate:
		return Op{
			Kind:   OpRotate,
			Axis:   paramAxis(a.Params, "axis", AxisY),
			Amount: paramFloat(a.Params, "amount", 90),
		}
	case ActionScale:
		return Op{
			Kind:   OpScale,
			Factor: paramFloat(a.Params, "scale", 1.5),
		}
	case ActionColor:
		return Op{
			Kind:  OpColor,
			Color: paramColor(a.Params, "color", ColorRed),
		}
	case ActionWait:
		return Op{
			Kind:    OpWait,
			Seconds: paramFloat(a.Params, "seconds", 1),
		}
	case ActionVisible:
		return Op{
			Kind:    OpVisible,
			Visible: paramBool(a.Params, "visible", false),
		}
	}
	return Op{Kind: OpNone}
}

// --- Parameter coercion ---

// paramFloat reads a numeric parameter. JSON decoding yields float64, but
// hand-built params may carry int or float32; all are accepted.
func paramFloat(params map[string]any, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

func paramBool(params map[string]any, key string, def bool) bool {
	if b, ok := params[key].(bool); ok {
		return b
	}
	return def
}

func paramAxis(params map[string]any, key string, def Axis) Axis {
	if s, ok := params[key].(string); ok {
		if a, ok := ParseAxis(s); ok {
			return a
		}
	}
	return def
}

func paramColor(params map[string]any, key string, def Color) Color {
	if s, ok := params[key].(string); ok {
		if c, ok := ParseHexColor(s); ok {
			return c
		}
	}
	return def
}
