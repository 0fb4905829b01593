package admin

import (
	"fmt"

	"contestboard/pkg/session"
)

type ServiceInterface interface {
	Login(password string) (string, error)
	Logout(token string) error
}

type Service struct {
	Verifier Verifier
	Sessions session.Registry
}

func NewService(verifier Verifier, sessions session.Registry) *Service {
	return &Service{Verifier: verifier, Sessions: sessions}
}

// Login checks the credential and opens a new session. No token is
// issued on a failed check.
func (s *Service) Login(password string) (string, error) {
	if err := s.Verifier.Verify(password); err != nil {
		return "", err
	}

	token, err := s.Sessions.Create()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Logout drops the session. Succeeds whether or not the token existed.
func (s *Service) Logout(token string) error {
	return s.Sessions.Invalidate(token)
}
