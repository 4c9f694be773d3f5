package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStep(t *testing.T) {
	step := NewStep("cargo", "fmt", "--", "--check")

	assert.Equal(t, "cargo fmt -- --check", step.Name)
	assert.Equal(t, []string{"cargo", "fmt", "--", "--check"}, step.Command)
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps("cargo")

	require.Len(t, steps, 4)
	assert.Equal(t, "cargo fmt -- --check", steps[0].Name)
	assert.Equal(t, "cargo check", steps[1].Name)
	assert.Equal(t, "cargo clippy", steps[2].Name)
	assert.Equal(t, "cargo test", steps[3].Name)
}

func TestDefaultSteps_CustomBinary(t *testing.T) {
	steps := DefaultSteps("/opt/rust/bin/cargo")

	require.Len(t, steps, 4)
	for _, step := range steps {
		assert.Equal(t, "/opt/rust/bin/cargo", step.Command[0])
	}
	assert.Equal(t, "/opt/rust/bin/cargo fmt -- --check", steps[0].Name)
}

func TestOverrides_Environ(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		want      []string
	}{
		{
			name:      "nil",
			overrides: nil,
			want:      nil,
		},
		{
			name:      "empty",
			overrides: Overrides{},
			want:      nil,
		},
		{
			name:      "single variable",
			overrides: Overrides{"RUSTFLAGS": "-D warnings"},
			want:      []string{"RUSTFLAGS=-D warnings"},
		},
		{
			name:      "sorted output",
			overrides: Overrides{"B": "2", "A": "1", "C": "3"},
			want:      []string{"A=1", "B=2", "C=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.overrides.Environ())
		})
	}
}

func TestDenyWarnings(t *testing.T) {
	env := DenyWarnings()

	assert.Equal(t, "-D warnings", env["RUSTFLAGS"])
	assert.Equal(t, []string{"RUSTFLAGS=-D warnings"}, env.Environ())
}
