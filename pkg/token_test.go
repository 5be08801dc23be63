package pkg

import "testing"

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func TestNewEntityToken(t *testing.T) {
	tok := NewEntityToken()
	if len(tok) != EntityTokenLen {
		t.Fatalf("expected %d chars, got %d", EntityTokenLen, len(tok))
	}
	if !isHex(tok) {
		t.Fatalf("expected lowercase hex, got %q", tok)
	}
	if NewEntityToken() == tok {
		t.Fatalf("tokens must not repeat")
	}
}

func TestNewSigningToken(t *testing.T) {
	tok := NewSigningToken()
	if len(tok) != SigningTokenLen {
		t.Fatalf("expected %d chars, got %d", SigningTokenLen, len(tok))
	}
	if !isHex(tok) {
		t.Fatalf("expected lowercase hex, got %q", tok)
	}
	if NewSigningToken() == tok {
		t.Fatalf("tokens must not repeat")
	}
}
