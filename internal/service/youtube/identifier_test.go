package youtube

import "testing"

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  IdentifierKind
		wantValue string
	}{
		{
			name:      "canonical channel ID",
			raw:       "UCuAXFkgsw1L7xaCfnd5JJOw",
			wantKind:  IdentifierKindID,
			wantValue: "UCuAXFkgsw1L7xaCfnd5JJOw",
		},
		{
			name:      "handle with @ prefix",
			raw:       "@mkbhd",
			wantKind:  IdentifierKindHandle,
			wantValue: "mkbhd",
		},
		{
			name:      "legacy username",
			raw:       "PewDiePie",
			wantKind:  IdentifierKindUsername,
			wantValue: "PewDiePie",
		},
		{
			name:      "UC prefix wins even for short strings",
			raw:       "UC",
			wantKind:  IdentifierKindID,
			wantValue: "UC",
		},
		{
			name:      "bare @ classifies as handle with empty value",
			raw:       "@",
			wantKind:  IdentifierKindHandle,
			wantValue: "",
		},
		{
			name:      "lowercase uc is a username",
			raw:       "ucberkeley",
			wantKind:  IdentifierKindUsername,
			wantValue: "ucberkeley",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIdentifier(tt.raw)
			if got.Kind != tt.wantKind {
				t.Errorf("ClassifyIdentifier(%q).Kind = %s, want %s", tt.raw, got.Kind, tt.wantKind)
			}
			if got.Value != tt.wantValue {
				t.Errorf("ClassifyIdentifier(%q).Value = %q, want %q", tt.raw, got.Value, tt.wantValue)
			}
		})
	}
}
