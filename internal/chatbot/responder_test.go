package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_KeywordRouting(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		message  string
		contains string
	}{
		{"Will it RAIN tomorrow?", "Weather widget"},
		{"I have an insect problem on my maize", "Pest management"},
		{"what fertilizer should I use", "Soil health"},
		{"drip irrigation advice", "water management"},
		{"which crop should I plant next", "Crop selection"},
		{"leaves have fungus spots", "Plant diseases"},
		{"when should I harvest", "Maximize your harvest"},
		{"going chemical-free this season", "Organic farming"},
		{"how do I increase profit", "Financial management"},
		{"my machinery keeps breaking", "equipment maintenance"},
	}

	for _, tt := range tests {
		reply := r.Reply(tt.message)
		assert.Contains(t, reply, tt.contains, "message: %q", tt.message)
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	r := NewResponder()
	// "rain" outranks "crop" because the weather rule comes first
	reply := r.Reply("will rain hurt my crop?")
	assert.Contains(t, reply, "Weather widget")
}

func TestReply_Fallback(t *testing.T) {
	r := NewResponder()
	reply := r.Reply("tell me a joke")
	assert.Contains(t, reply, "farming assistant")
}

func TestReply_Deterministic(t *testing.T) {
	r := NewResponder()
	assert.Equal(t, r.Reply("pest"), r.Reply("pest"))
}
