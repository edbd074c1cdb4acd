package physics

import "testing"

func TestEngineBurn(t *testing.T) {
	e := NewEngine(5000, 1)
	if !e.Activate() {
		t.Fatal("engine with fuel should activate")
	}
	e.Burn(0.5)
	if e.Fuel != 0.5 || !e.Activated {
		t.Fatalf("fuel %v activated %v", e.Fuel, e.Activated)
	}
	e.Burn(1)
	if e.Fuel != 0 || e.Activated {
		t.Errorf("empty engine: fuel %v activated %v", e.Fuel, e.Activated)
	}
	if e.Activate() {
		t.Error("empty engine should not activate")
	}
	e.Refuel()
	if e.Fuel != 1 {
		t.Errorf("Refuel() fuel = %v", e.Fuel)
	}
}

func TestEngineBoost(t *testing.T) {
	e := NewEngine(5000, 10)
	e.Boost(true)
	e.Boost(true)
	if e.Force != 10000 || e.BurnRate != 2 {
		t.Errorf("boosted force %v burn %v", e.Force, e.BurnRate)
	}
	e.Boost(false)
	if e.Force != 5000 || e.BurnRate != 1 || e.Boosted {
		t.Errorf("released force %v burn %v", e.Force, e.BurnRate)
	}

	dry := NewEngine(5000, 0)
	dry.Boost(true)
	if dry.Boosted {
		t.Error("dry engine should not boost")
	}
}
