package gamesetup

import "testing"

func TestAfterFiresOnceAfterDelay(t *testing.T) {
	src := NewManualTime()
	g := NewGame()
	g.SetTimeSource(src)
	in := NewInjectSource()
	surf := NewRecordingSurface(100, 100)

	fired := 0
	timer := g.After(100, func() { fired++ })
	if g.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", g.Pending())
	}

	src.AdvanceSeconds(0.05)
	g.Step(in, surf)
	if fired != 0 {
		t.Fatalf("fired = %d before delay, want 0", fired)
	}

	src.AdvanceSeconds(0.1)
	g.Step(in, surf)
	g.Step(in, surf)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if !timer.Completed() {
		t.Error("Completed = false, want true")
	}
	if g.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", g.Pending())
	}
}

func TestAfterZeroDelayWaitsForTime(t *testing.T) {
	src := NewManualTime()
	g := NewGame()
	g.SetTimeSource(src)

	fired := false
	g.After(0, func() { fired = true })
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))
	if fired {
		t.Error("zero-delay timer fired with no time elapsed")
	}
	src.AdvanceSeconds(0.001)
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))
	if !fired {
		t.Error("zero-delay timer did not fire once time passed")
	}
}

func TestAfterRegistrationOrder(t *testing.T) {
	src := NewManualTime()
	g := NewGame()
	g.SetTimeSource(src)

	var order []int
	g.After(30, func() { order = append(order, 1) })
	g.After(10, func() { order = append(order, 2) })
	g.After(20, func() { order = append(order, 3) })

	src.AdvanceSeconds(1)
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestAfterScheduledFromCallbackWaitsForNextPoll(t *testing.T) {
	src := NewManualTime()
	g := NewGame()
	g.SetTimeSource(src)

	inner := false
	g.After(10, func() {
		g.After(0, func() { inner = true })
	})

	src.AdvanceSeconds(1)
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))
	if inner {
		t.Fatal("timer scheduled during poll fired in the same poll")
	}
	if g.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", g.Pending())
	}
	src.AdvanceSeconds(0.01)
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))
	if !inner {
		t.Error("inner timer did not fire")
	}
}
