package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService struct {
	Contact storage.ContactStore
}

// Submit stores a contact inquiry. userID is nil for anonymous callers.
func (s *ContactService) Submit(ctx context.Context, userID *uint, name, email, subject, message string) (*models.ContactInquiry, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("name, email and message are required: %w", ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("invalid email address: %w", ErrValidation)
	}

	inquiry := models.ContactInquiry{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.Contact.Insert(ctx, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}
