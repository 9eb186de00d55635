package coinbase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Authenticator attaches request authentication for a given method and path.
// The signed-request mechanism itself is the exchange's contract; callers
// only ever see the resulting header.
type Authenticator interface {
	Authenticate(req *http.Request, method, path string) error
}

// jwtAuthenticator builds per-request ES256 JWTs in the CDP key format
// Coinbase expects: "organizations/{org}/apiKeys/{key}" plus an EC private
// key in PEM form.
type jwtAuthenticator struct {
	keyName string
	signKey interface{}
	host    string
}

// NewJWTAuthenticator parses the EC private key and returns an Authenticator
// producing bearer tokens scoped to single method+path pairs.
func NewJWTAuthenticator(keyName, privateKeyPEM, baseURL string) (Authenticator, error) {
	if strings.TrimSpace(keyName) == "" {
		return nil, fmt.Errorf("coinbase auth: api key name is required")
	}

	// PEM keys pasted from env files frequently carry escaped newlines.
	pemData := strings.ReplaceAll(privateKeyPEM, `\n`, "\n")
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(pemData))
	if err != nil {
		return nil, fmt.Errorf("coinbase auth: parse private key: %w", err)
	}

	host := "api.coinbase.com"
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &jwtAuthenticator{keyName: keyName, signKey: key, host: host}, nil
}

func (a *jwtAuthenticator) Authenticate(req *http.Request, method, path string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": a.keyName,
		"iss": "cdp",
		"nbf": now.Unix(),
		"exp": now.Add(2 * time.Minute).Unix(),
		"uri": fmt.Sprintf("%s %s%s", method, a.host, path),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = a.keyName
	token.Header["nonce"] = newNonce()

	signed, err := token.SignedString(a.signKey)
	if err != nil {
		return fmt.Errorf("coinbase auth: sign jwt: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+signed)
	return nil
}

func newNonce() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
