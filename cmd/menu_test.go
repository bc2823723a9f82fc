package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cpusim/cpusim/sim"
)

func TestPromptAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want sim.Algorithm
	}{
		{"1\n", sim.AlgorithmFCFS},
		{"4\n", sim.AlgorithmRoundRobin},
		{" 3 \r\n", sim.AlgorithmPriority},
		{"2", sim.AlgorithmSJF}, // EOF without newline
		{"rr\n", sim.AlgorithmRoundRobin},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptAlgorithm(strings.NewReader(tt.in), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptAlgorithm_Invalid(t *testing.T) {
	for _, in := range []string{"0\n", "5\n", "abc\n"} {
		_, err := promptAlgorithm(strings.NewReader(in), &bytes.Buffer{})
		assert.ErrorIs(t, err, sim.ErrUnknownAlgorithm, "input %q", in)
	}
}

func TestPromptAlgorithm_NoInput_ReturnsError(t *testing.T) {
	_, err := promptAlgorithm(strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestAlgorithmsCommand_ListsNames(t *testing.T) {
	var out bytes.Buffer
	algorithmsCmd.SetOut(&out)
	t.Cleanup(func() { algorithmsCmd.SetOut(nil) })

	algorithmsCmd.Run(algorithmsCmd, nil)

	assert.Equal(t, "1. FirstInFirstOut (fcfs)\n2. ShortestJobFirst (sjf)\n3. Priority (priority)\n4. RoundRobin (round-robin)\n", out.String())
}
