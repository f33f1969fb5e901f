package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	tokenTTL   = 1200 * time.Second
)

// Claims carries the user identifier plus the registered claim set. Expiry is
// embedded and enforced on verification, not just reported to the client.
type Claims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// LoadKeys reads the RSA key pair from PEM files and sets the token lifetime.
func LoadKeys(privatePath, publicPath string, ttlSeconds int) error {
	privPEM, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}
	pubPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("read public key: %w", err)
	}

	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}

	privateKey = priv
	publicKey = pub
	tokenTTL = time.Duration(ttlSeconds) * time.Second
	return nil
}

// SetKeys installs an in-memory key pair, bypassing PEM files.
func SetKeys(key *rsa.PrivateKey, ttlSeconds int) {
	privateKey = key
	publicKey = &key.PublicKey
	tokenTTL = time.Duration(ttlSeconds) * time.Second
}

// TokenTTLSeconds is the advisory expiresIn value returned alongside tokens.
func TokenTTLSeconds() int {
	return int(tokenTTL / time.Second)
}

// GenerateJWT signs an RS256 token asserting the user identifier.
func GenerateJWT(userID int) (string, error) {
	if privateKey == nil {
		return "", errors.New("signing key not loaded")
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(privateKey)
}

// ParseUserID verifies the signature, algorithm and expiry, and returns the
// asserted user identifier.
func ParseUserID(tokenString string) (int, error) {
	if publicKey == nil {
		return 0, errors.New("verification key not loaded")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}
	return claims.UserID, nil
}
