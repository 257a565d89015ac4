// Package rowan compiles declarative per-object behavior graphs ("when the
// scene starts / when clicked: move, rotate, scale, recolor, wait,
// show/hide") into executable procedures and runs them concurrently over a
// live scene while it renders and responds to input.
//
// # Behavior graphs
//
// Every object owns one [BehaviorGraph]: an ordered action list per trigger
// kind ([TriggerStart], [TriggerClick]). Actions are edited declaratively and
// never rejected — [Compile] substitutes defaults for missing or malformed
// parameters, so a graph is always compilable.
//
//	graph := rowan.NewBehaviorGraph()
//	graph.Append(rowan.TriggerClick, rowan.ActionMove,
//		map[string]any{"axis": "y", "amount": 2.0})
//	graph.Append(rowan.TriggerClick, rowan.ActionWait,
//		map[string]any{"seconds": 1.0})
//	graph.Append(rowan.TriggerClick, rowan.ActionColor,
//		map[string]any{"color": "#00ff00"})
//
// # Runtime
//
// A [Runtime] owns the compiled procedures for one simulation session. Start
// launches every start procedure concurrently, binds click and key listeners
// on the [Surface], and resolves clicks to objects through the
// [ObjectAccessor]'s ray intersection. Scheduling is cooperative and
// single-threaded: instances interleave only at suspension points (waits and
// interpolation steps), and Stop cancels them at the next resume boundary.
//
//	rt := rowan.NewRuntime(scene, surface)
//	if err := rt.Start(objects); err != nil {
//		log.Fatal(err)
//	}
//	// each frame:
//	rt.Update(dt)
//
// [NewClock] drives Update in real time for hosts without a frame loop.
//
// # Scenes
//
// Property mutations flow through the [ObjectAccessor] interface into a
// scene graph owned by the surrounding application. The package ships a
// reference implementation — [Scene], [Object], [Camera] — used by the tests
// and examples, with sphere-based ray picking that honors visibility the way
// a renderer would.
package rowan
