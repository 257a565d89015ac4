package rowan

import "testing"

func TestCompileMoveDefaults(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionMove, map[string]any{})

	procs := Compile("obj", g)
	proc := procs[TriggerStart]
	if proc == nil {
		t.Fatal("no start procedure")
	}
	op := proc.Ops[0]
	if op.Kind != OpMove || op.Axis != AxisX || op.Amount != 1 {
		t.Errorf("MOVE with empty params = %+v, want moveBy(x, 1)", op)
	}
}

func TestCompileDefaultsTable(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionMove, nil)
	g.Append(TriggerStart, ActionRotate, nil)
	g.Append(TriggerStart, ActionScale, nil)
	g.Append(TriggerStart, ActionColor, nil)
	g.Append(TriggerStart, ActionWait, nil)
	g.Append(TriggerStart, ActionVisible, nil)

	ops := Compile("obj", g)[TriggerStart].Ops
	if len(ops) != 6 {
		t.Fatalf("expected 6 ops, got %d", len(ops))
	}

	if ops[0].Kind != OpMove || ops[0].Axis != AxisX || ops[0].Amount != 1 {
		t.Errorf("MOVE default: %+v", ops[0])
	}
	if ops[1].Kind != OpRotate || ops[1].Axis != AxisY || ops[1].Amount != 90 {
		t.Errorf("ROTATE default: %+v", ops[1])
	}
	if ops[2].Kind != OpScale || ops[2].Factor != 1.5 {
		t.Errorf("SCALE default: %+v", ops[2])
	}
	if ops[3].Kind != OpColor || ops[3].Color != ColorRed {
		t.Errorf("COLOR default: %+v", ops[3])
	}
	if ops[4].Kind != OpWait || ops[4].Seconds != 1 {
		t.Errorf("WAIT default: %+v", ops[4])
	}
	if ops[5].Kind != OpVisible || ops[5].Visible != false {
		t.Errorf("VISIBLE default: %+v", ops[5])
	}
}

func TestCompileExplicitParams(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerClick, ActionMove, map[string]any{"axis": "z", "amount": -3.5})
	g.Append(TriggerClick, ActionColor, map[string]any{"color": "#00ff00"})
	g.Append(TriggerClick, ActionVisible, map[string]any{"visible": true})
	g.Append(TriggerClick, ActionWait, map[string]any{"seconds": 0.5})

	ops := Compile("obj", g)[TriggerClick].Ops

	if ops[0].Axis != AxisZ || ops[0].Amount != -3.5 {
		t.Errorf("MOVE params: %+v", ops[0])
	}
	if ops[1].Color.G != 1 || ops[1].Color.R != 0 {
		t.Errorf("COLOR params: %+v", ops[1])
	}
	if ops[2].Visible != true {
		t.Errorf("VISIBLE params: %+v", ops[2])
	}
	if ops[3].Seconds != 0.5 {
		t.Errorf("WAIT params: %+v", ops[3])
	}
}

func TestCompileCoercesNumericTypes(t *testing.T) {
	// Hand-built params carry Go ints; JSON-decoded ones carry float64.
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionMove, map[string]any{"amount": 4})
	g.Append(TriggerStart, ActionWait, map[string]any{"seconds": int64(2)})

	ops := Compile("obj", g)[TriggerStart].Ops
	if ops[0].Amount != 4 {
		t.Errorf("int amount: %+v", ops[0])
	}
	if ops[1].Seconds != 2 {
		t.Errorf("int64 seconds: %+v", ops[1])
	}
}

func TestCompileBadParamsFallBackToDefaults(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionMove, map[string]any{"axis": "diagonal", "amount": "fast"})
	g.Append(TriggerStart, ActionColor, map[string]any{"color": "reddish"})
	g.Append(TriggerStart, ActionVisible, map[string]any{"visible": "yes"})

	ops := Compile("obj", g)[TriggerStart].Ops
	if ops[0].Axis != AxisX || ops[0].Amount != 1 {
		t.Errorf("bad MOVE params should default: %+v", ops[0])
	}
	if ops[1].Color != ColorRed {
		t.Errorf("bad COLOR param should default: %+v", ops[1])
	}
	if ops[2].Visible != false {
		t.Errorf("bad VISIBLE param should default: %+v", ops[2])
	}
}

func TestCompileUnknownActionTypeIsNoOp(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionMove, nil)
	g.Append(TriggerStart, ActionType("TELEPORT"), map[string]any{"x": 99.0})
	g.Append(TriggerStart, ActionColor, nil)

	ops := Compile("obj", g)[TriggerStart].Ops
	if len(ops) != 3 {
		t.Fatalf("unknown type must not abort siblings: %d ops", len(ops))
	}
	if ops[1].Kind != OpNone {
		t.Errorf("unknown type compiled to %v, want OpNone", ops[1].Kind)
	}
	if ops[0].Kind != OpMove || ops[2].Kind != OpColor {
		t.Error("sibling actions disturbed")
	}
}

func TestCompileOmitsEmptyTriggers(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerClick, ActionMove, nil)

	procs := Compile("obj", g)
	if len(procs) != 1 {
		t.Fatalf("expected 1 procedure, got %d", len(procs))
	}
	if procs[TriggerStart] != nil {
		t.Error("empty start trigger produced a procedure")
	}
	proc := procs[TriggerClick]
	if proc.ObjectID != "obj" || proc.Trigger != TriggerClick {
		t.Errorf("procedure binding: %+v", proc)
	}
}

func TestCompileNilAndEmptyGraph(t *testing.T) {
	if procs := Compile("obj", nil); len(procs) != 0 {
		t.Errorf("nil graph compiled to %d procedures", len(procs))
	}
	if procs := Compile("obj", NewBehaviorGraph()); len(procs) != 0 {
		t.Errorf("empty graph compiled to %d procedures", len(procs))
	}
}

func TestCompilePreservesActionOrder(t *testing.T) {
	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionWait, nil)
	g.Append(TriggerStart, ActionMove, nil)
	g.Append(TriggerStart, ActionVisible, nil)
	g.Append(TriggerStart, ActionScale, nil)

	ops := Compile("obj", g)[TriggerStart].Ops
	want := []OpKind{OpWait, OpMove, OpVisible, OpScale}
	for i, k := range want {
		if ops[i].Kind != k {
			t.Errorf("op %d kind %v, want %v", i, ops[i].Kind, k)
		}
	}
}

func TestProcedureMoveTo(t *testing.T) {
	p := &Procedure{ObjectID: "obj", Trigger: TriggerStart}
	p.MoveTo(Vec3{1, 2, 3}, 0.5)

	if len(p.Ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(p.Ops))
	}
	op := p.Ops[0]
	if op.Kind != OpMoveTo || op.Target != (Vec3{1, 2, 3}) || op.Seconds != 0.5 {
		t.Errorf("MoveTo op: %+v", op)
	}
}
