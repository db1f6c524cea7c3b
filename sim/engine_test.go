package sim

import (
	"errors"
	"testing"
)

func TestSelectTable(t *testing.T) {
	wide := Capabilities{WideVector: true, Threads: 8, CacheLineBytes: 64}
	narrow := Capabilities{Threads: 8, CacheLineBytes: 64}

	tests := []struct {
		name  string
		caps  Capabilities
		steps int
		paths int
		want  Engine
	}{
		{"below threshold prefers mt", wide, 99, 1_000_000, EngineMultiThreaded},
		{"above threshold prefers simd", wide, 101, 1_000_000, EngineSIMD},
		{"at threshold prefers simd", wide, 100, 1_000_000, EngineSIMD},
		{"no wide vector low steps", narrow, 99, 1_000_000, EngineMultiThreaded},
		{"no wide vector high steps", narrow, 500, 1_000_000, EngineMultiThreaded},
		{"tiny workload stays scalar", wide, 10, 100, EngineScalar},
		{"single path few steps", narrow, 2, 1, EngineScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.caps, tt.steps, tt.paths); got != tt.want {
				t.Errorf("Select(%+v, %d, %d) = %v, want %v",
					tt.caps, tt.steps, tt.paths, got, tt.want)
			}
		})
	}
}

func TestSelectNeverReturnsAuto(t *testing.T) {
	caps := ProbeCapabilities()

	for _, steps := range []int{1, 50, 100, 1000} {
		for _, paths := range []int{1, 1000, 10_000_000} {
			if got := Select(caps, steps, paths); got == EngineAuto {
				t.Errorf("Select(caps, %d, %d) = EngineAuto", steps, paths)
			}
		}
	}
}

func TestSelectCustomThreshold(t *testing.T) {
	wide := Capabilities{WideVector: true, Threads: 8}

	if got := selectEngine(wide, 150, 1_000_000, 200); got != EngineMultiThreaded {
		t.Errorf("selectEngine with threshold 200 at 150 steps = %v, want mt", got)
	}

	if got := selectEngine(wide, 250, 1_000_000, 200); got != EngineSIMD {
		t.Errorf("selectEngine with threshold 200 at 250 steps = %v, want simd", got)
	}
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{"auto", EngineAuto, false},
		{"scalar", EngineScalar, false},
		{"mt", EngineMultiThreaded, false},
		{"MT", EngineMultiThreaded, false},
		{"multithreaded", EngineMultiThreaded, false},
		{"SIMD", EngineSIMD, false},
		{"gpu", EngineAuto, true},
		{"", EngineAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEngine(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEngine(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrUnknownEngine) {
				t.Errorf("ParseEngine(%q) error = %v, want ErrUnknownEngine", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("ParseEngine(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEngineString(t *testing.T) {
	tests := []struct {
		engine Engine
		want   string
	}{
		{EngineAuto, "auto"},
		{EngineScalar, "scalar"},
		{EngineMultiThreaded, "mt"},
		{EngineSIMD, "simd"},
		{Engine(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.engine.String(); got != tt.want {
			t.Errorf("Engine(%d).String() = %q, want %q", int(tt.engine), got, tt.want)
		}
	}
}

func TestProbeCapabilitiesNeverFails(t *testing.T) {
	caps := ProbeCapabilities()

	if caps.Threads < 1 {
		t.Errorf("Threads = %d, want >= 1", caps.Threads)
	}

	if caps.CacheLineBytes == 0 {
		t.Errorf("CacheLineBytes = 0, want detected value or 64 fallback")
	}
}
