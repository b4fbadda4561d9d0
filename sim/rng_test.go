package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

func TestTrialKey_DependsOnlyOnCoordinates(t *testing.T) {
	master := NewSimulationKey(7)

	if TrialKey(master, 3, 9) != TrialKey(master, 3, 9) {
		t.Error("TrialKey not deterministic for identical coordinates")
	}

	seen := make(map[SimulationKey]string)
	coords := [][2]int{{1, 0}, {1, 1}, {0, 1}, {2, 0}, {10, 1}, {1, 10}}
	for _, c := range coords {
		k := TrialKey(master, c[0], c[1])
		if prev, ok := seen[k]; ok {
			t.Errorf("TrialKey collision between %v and %s", c, prev)
		}
		seen[k] = "set"
	}
}

func TestTrialKey_DiffersAcrossMasters(t *testing.T) {
	if TrialKey(NewSimulationKey(1), 5, 5) == TrialKey(NewSimulationKey(2), 5, 5) {
		t.Error("different master keys produced the same trial key")
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemSelector).Float64()
		v2 := rng2.ForSubsystem(SubsystemSelector).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from the inputs stream doesn't shift the selector stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemInputs).Intn(100)
	}
	aSelectorFirst := rngA.ForSubsystem(SubsystemSelector).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemSelector).Float64()

	if aSelectorFirst != expectedFirst {
		t.Errorf("selector first value = %v, want %v (isolation broken)", aSelectorFirst, expectedFirst)
	}
}

func TestPartitionedRNG_InputsUsesKeyDirectly(t *testing.T) {
	seed := int64(42)
	inputs := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemInputs)
	direct := newRandFromSeed(seed)

	for i := 0; i < 10; i++ {
		if got, want := inputs.Int63(), direct.Int63(); got != want {
			t.Errorf("Value %d: inputs RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if rng.ForSubsystem(SubsystemInputs) != rng.ForSubsystem(SubsystemInputs) {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemInputs)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Collision(t *testing.T) {
	names := []string{
		SubsystemInputs,
		SubsystemSelector,
		"trial_0_0",
		"trial_0_1",
		"trial_1_0",
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

func BenchmarkTrialKey(b *testing.B) {
	master := NewSimulationKey(42)
	for i := 0; i < b.N; i++ {
		_ = NewPartitionedRNG(TrialKey(master, i%729, i))
	}
}

// newRandFromSeed creates a *rand.Rand with the given seed.
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
