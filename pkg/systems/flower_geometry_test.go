package systems

import (
	"math"
	"testing"
)

func TestPetalRings(t *testing.T) {
	if len(PetalRings) != 3 {
		t.Fatalf("expected three petal rings, got %d", len(PetalRings))
	}

	outer := PetalRings[0].PetalAngles()
	middle := PetalRings[1].PetalAngles()
	inner := PetalRings[2].PetalAngles()

	if len(outer) != 6 || outer[1]-outer[0] != 60 {
		t.Errorf("outer ring = %v, want six petals at 60°", outer)
	}
	if len(middle) != 6 || middle[0]-outer[0] != 30 || middle[1]-middle[0] != 60 {
		t.Errorf("middle ring = %v, want six petals offset 30°", middle)
	}
	if len(inner) != 5 || inner[1]-inner[0] != 72 {
		t.Errorf("inner ring = %v, want five petals at 72°", inner)
	}
	if PetalRings[2].RX >= PetalRings[0].RX || PetalRings[2].RY >= PetalRings[0].RY {
		t.Error("inner ring should use a tighter radius than the outer ring")
	}
}

// TestFlowerPoseStages 各阶段按顺序出现：茎 → 左叶 → 右叶 → 花头
func TestFlowerPoseStages(t *testing.T) {
	const ttl = 10.0

	start := ComputeFlowerPose(0, 0, ttl)
	if start.Alpha != 0 || start.StemProgress != 0 || start.BloomScale != 0 {
		t.Errorf("pose at spawn should be empty, got %+v", start)
	}

	at := func(age float64) FlowerPose { return ComputeFlowerPose(age, 5, ttl) }

	if p := at(0.4); p.StemProgress <= 0 || p.LeftLeafScale != 0 {
		t.Errorf("at 0.4s stem should grow before leaves, got %+v", p)
	}
	if p := at(0.6); p.LeftLeafScale <= 0 || p.RightLeafScale != 0 {
		t.Errorf("at 0.6s left leaf should precede right leaf, got %+v", p)
	}
	if p := at(1.0); p.RightLeafScale <= 0 || p.BloomScale != 0 {
		t.Errorf("at 1.0s right leaf should precede bloom, got %+v", p)
	}
	if p := at(1.5); p.BloomScale <= 0 {
		t.Errorf("at 1.5s bloom should have started, got %+v", p)
	}

	settled := at(3)
	if settled.Alpha != 1 || settled.StemProgress != 1 || settled.BloomScale != 1 ||
		settled.LeftLeafScale != 1 || settled.RightLeafScale != 1 {
		t.Errorf("all stages should be complete at 3s, got %+v", settled)
	}
}

func TestFlowerPoseSwayUsesPhaseOffset(t *testing.T) {
	a := ComputeFlowerPose(4, 0, 10)
	b := ComputeFlowerPose(4, 1.5, 10)
	if a.SwayAngle == b.SwayAngle {
		t.Error("different phase offsets should desynchronize sway")
	}

	before := ComputeFlowerPose(1, 1.5, 10)
	if before.SwayAngle != 0 || before.SwayOffsetX != 0 {
		t.Errorf("sway should not start before its phase offset, got %+v", before)
	}

	// 一个周期后回到相同角度
	c := ComputeFlowerPose(4+swayPeriod, 0, 10)
	if math.Abs(a.SwayAngle-c.SwayAngle) > 1e-9 {
		t.Errorf("sway should loop every %vs: %v vs %v", swayPeriod, a.SwayAngle, c.SwayAngle)
	}

	for age := 0.0; age < 30; age += 0.1 {
		p := ComputeFlowerPose(age, 0.7, 0)
		if math.Abs(p.SwayAngle) > 1.5+1e-9 || math.Abs(p.SwayOffsetX) > 2+1e-9 {
			t.Fatalf("sway out of range at %v: %+v", age, p)
		}
	}
}

func TestFlowerPoseExit(t *testing.T) {
	const ttl = 10.0

	if p := ComputeFlowerPose(9.4, 0, ttl); p.Alpha != 1 || p.ExitScale != 1 {
		t.Errorf("exit should not start before the last 0.5s, got %+v", p)
	}

	mid := ComputeFlowerPose(9.75, 0, ttl)
	if mid.Alpha <= 0 || mid.Alpha >= 1 || mid.ExitScale >= 1 || mid.ExitOffsetY <= 0 {
		t.Errorf("exit should be in progress at 9.75s, got %+v", mid)
	}

	end := ComputeFlowerPose(ttl, 0, ttl)
	if end.Alpha != 0 || end.ExitScale != exitScale || end.ExitOffsetY != exitOffsetY {
		t.Errorf("flower should be fully faded at TTL, got %+v", end)
	}
}

func TestStemPoints(t *testing.T) {
	const h = 300.0

	if pts := StemPoints(h, 10, 0); pts != nil {
		t.Errorf("zero progress should produce no stem, got %d points", len(pts))
	}

	full := StemPoints(h, 15, 1)
	first, last := full[0], full[len(full)-1]
	if first.X != flowerCenterX || first.Y != h {
		t.Errorf("stem should start at the base, got %+v", first)
	}
	if math.Abs(last.X-flowerCenterX) > 1e-9 || math.Abs(last.Y-stemTipY) > 1e-9 {
		t.Errorf("stem should end at the tip, got %+v", last)
	}

	// 曲率为正时茎向右弯
	mid := full[len(full)/2]
	if mid.X <= flowerCenterX {
		t.Errorf("positive curvature should bend right, mid=%+v", mid)
	}

	half := StemPoints(h, 15, 0.5)
	end := half[len(half)-1]
	if end.Y <= stemTipY || end.Y >= h {
		t.Errorf("half-grown stem should end between base and tip, got %+v", end)
	}
}

func TestLeavesPositions(t *testing.T) {
	left, right := Leaves(200)
	if left.Base.Y != 120 || right.Base.Y != 90 {
		t.Errorf("leaf bases = %v / %v, want 120 / 90", left.Base.Y, right.Base.Y)
	}
	if left.Tip.X >= flowerCenterX || right.Tip.X <= flowerCenterX {
		t.Error("left leaf should extend left and right leaf right")
	}
}
