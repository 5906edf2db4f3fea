package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "alice"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, username, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Username != username {
		t.Errorf("expected username %q, got %q", username, token.Username)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %q, got %q", issuer, claims.Issuer)
	}
	if claims.Subject != username {
		t.Errorf("expected subject %q, got %q", username, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	issued, err := GenerateJWTToken(issuer, "bob", time.Hour, key)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.Username != "bob" {
		t.Errorf("expected subject %q, got %q", "bob", parsed.Username)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "bob", -time.Minute, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "key", "iss"); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "bob", time.Hour, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", "iss"); err == nil {
		t.Error("expected error for wrong sign key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "bob", time.Hour, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "key", "other-iss"); err == nil {
		t.Error("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "bob", time.Hour, "key")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(issued.SignedString, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact JWS with 3 parts, got %d", len(parts))
	}

	// flip every signature byte in turn; each mutation must invalidate the token
	signature := parts[2]
	for i := 0; i < len(signature); i++ {
		mutated := []byte(signature)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		tampered := parts[0] + "." + parts[1] + "." + string(mutated)
		if tampered == issued.SignedString {
			continue
		}

		if _, err := ValidateAndParseJWTToken(tampered, "key", "iss"); err == nil {
			t.Errorf("expected error for signature tampered at position %d, got nil", i)
		}
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for missing subject claim, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not-a-jwt", "key", "iss"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
