package kbrpc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenEnv is the environment variable holding the KBase auth token.
const TokenEnv = "KB_AUTH_TOKEN"

// tokenFile is read from the home directory when TokenEnv is unset.
const tokenFile = ".kbase_token"

// LoadTokenFromEnv loads a token from KB_AUTH_TOKEN.
func LoadTokenFromEnv() (string, error) {
	token := strings.TrimSpace(os.Getenv(TokenEnv))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// TokenFilePath returns the path of the stored token, ~/.kbase_token.
func TokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, tokenFile), nil
}

// LoadTokenFromFile loads a token from ~/.kbase_token.
func LoadTokenFromFile() (string, error) {
	path, err := TokenFilePath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrNoToken
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// LoadToken tries KB_AUTH_TOKEN, then ~/.kbase_token.
func LoadToken() (string, error) {
	token, err := LoadTokenFromEnv()
	if err == nil {
		return token, nil
	}
	return LoadTokenFromFile()
}
