package services

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const securetokenJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

type firebaseJWKS struct {
	Keys []firebaseJWK `json:"keys"`
}

type firebaseJWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type firebaseKeyCache struct {
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
	mu        sync.RWMutex
}

// FirebaseKeyClient resolves the RSA public keys Google uses to sign
// Firebase ID tokens and validates the token claims against the project.
type FirebaseKeyClient struct {
	cache      *firebaseKeyCache
	httpClient *http.Client
	jwksURL    string
	projectID  string
}

func NewFirebaseKeyClient(projectID string) *FirebaseKeyClient {
	return &FirebaseKeyClient{
		cache: &firebaseKeyCache{
			keys: make(map[string]*rsa.PublicKey),
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		jwksURL:    securetokenJWKSURL,
		projectID:  projectID,
	}
}

func (c *FirebaseKeyClient) fetchKeys() error {
	resp, err := c.httpClient.Get(c.jwksURL)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks firebaseJWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	c.cache.keys = make(map[string]*rsa.PublicKey)
	for _, key := range jwks.Keys {
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		c.cache.keys[key.Kid] = pubKey
	}
	c.cache.expiresAt = time.Now().Add(24 * time.Hour)
	return nil
}

func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}

func (c *FirebaseKeyClient) getPublicKey(kid string) (*rsa.PublicKey, error) {
	c.cache.mu.RLock()
	if key, ok := c.cache.keys[kid]; ok && time.Now().Before(c.cache.expiresAt) {
		c.cache.mu.RUnlock()
		return key, nil
	}
	c.cache.mu.RUnlock()

	if err := c.fetchKeys(); err != nil {
		return nil, err
	}

	c.cache.mu.RLock()
	defer c.cache.mu.RUnlock()
	if key, ok := c.cache.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("public key with kid %s not found", kid)
}

// Keyfunc plugs into the JWT middleware. Signature and expiry checks happen
// in the parser; issuer and audience are checked by ValidateClaims.
func (c *FirebaseKeyClient) Keyfunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodRS256.Alg() {
		return nil, fmt.Errorf("unsupported algorithm: %s", token.Method.Alg())
	}
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token missing kid header")
	}
	return c.getPublicKey(kid)
}

// ValidateClaims checks issuer, audience and the email claim against the
// Firebase project.
func (c *FirebaseKeyClient) ValidateClaims(claims jwt.MapClaims) error {
	iss, _ := claims["iss"].(string)
	if iss != "https://securetoken.google.com/"+c.projectID {
		return fmt.Errorf("invalid issuer: %s", iss)
	}
	aud, _ := claims["aud"].(string)
	if aud != c.projectID {
		return fmt.Errorf("invalid audience: %s", aud)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return fmt.Errorf("token missing email claim")
	}
	return nil
}
