package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Move", ActionMove},
		{"WAIT", ActionWait},
		{"cheat_vis", ActionCheatVision},
		{"RESET", ActionReset},
		{"ATTACK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionCheatVision, "CHEAT_VIS"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestActionType_PassesTurn(t *testing.T) {
	if !ActionMove.PassesTurn() || !ActionWait.PassesTurn() {
		t.Error("MOVE and WAIT must pass the turn")
	}
	if ActionCheatVision.PassesTurn() || ActionReset.PassesTurn() || ActionInit.PassesTurn() {
		t.Error("CHEAT_VIS, RESET and INIT must not pass the turn")
	}
}
