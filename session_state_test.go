package pll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{AwaitingInput, "AwaitingInput"},
		{Terminated, "Terminated"},
		{State(0), "State(0)"},
		{State(3), "State(3)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestStateJSON(t *testing.T) {
	data, err := json.Marshal(Terminated)
	require.NoError(t, err)
	assert.Equal(t, `"Terminated"`, string(data))

	var s State
	require.NoError(t, json.Unmarshal([]byte(`"AwaitingInput"`), &s))
	assert.Equal(t, AwaitingInput, s)
}

func TestStateJSONInvalid(t *testing.T) {
	_, err := json.Marshal(State(0))
	assert.Error(t, err)

	var s State
	assert.Error(t, json.Unmarshal([]byte(`"Resolved"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`1`), &s))
}
