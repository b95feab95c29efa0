package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func validFirebaseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   "https://securetoken.google.com/demo-project",
		"aud":   "demo-project",
		"email": "rahim@example.com",
	}
}

func TestValidateClaimsAcceptsMatchingProject(t *testing.T) {
	client := NewFirebaseKeyClient("demo-project")

	assert.NoError(t, client.ValidateClaims(validFirebaseClaims()))
}

func TestValidateClaimsRejectsBadClaims(t *testing.T) {
	client := NewFirebaseKeyClient("demo-project")

	cases := []struct {
		name   string
		mutate func(jwt.MapClaims)
	}{
		{"wrong issuer", func(c jwt.MapClaims) { c["iss"] = "https://securetoken.google.com/other-project" }},
		{"missing issuer", func(c jwt.MapClaims) { delete(c, "iss") }},
		{"wrong audience", func(c jwt.MapClaims) { c["aud"] = "other-project" }},
		{"missing email", func(c jwt.MapClaims) { delete(c, "email") }},
		{"empty email", func(c jwt.MapClaims) { c["email"] = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := validFirebaseClaims()
			tc.mutate(claims)
			assert.Error(t, client.ValidateClaims(claims))
		})
	}
}
