package service

import (
	"context"
	"reflect"
	"strings"
	"time"

	"sarita-industries/internal/domain"
	"sarita-industries/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactInput is a contact form submission before validation
type ContactInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Subject string  `json:"subject" validate:"required,max=255"`
	Message string  `json:"message" validate:"required"`
}

// QuoteInput is the complete quote request assembled by the two-step form
type QuoteInput struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company         string  `json:"company" validate:"required,max=255"`
	ProductInterest *string `json:"product_interest,omitempty" validate:"omitempty,max=255"`
	Message         string  `json:"message" validate:"required"`
}

// IntakeService records contact messages and quote requests
type IntakeService interface {
	SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactMessage, error)
	SubmitQuote(ctx context.Context, input QuoteInput) (*domain.QuoteRequest, error)
	ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	ListQuoteRequests(ctx context.Context) ([]*domain.QuoteRequest, error)
}

type intakeService struct {
	contactRepo repository.ContactRepository
	quoteRepo   repository.QuoteRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewIntakeService creates a new instance of IntakeService
func NewIntakeService(contactRepo repository.ContactRepository, quoteRepo repository.QuoteRepository, logger *zap.Logger) IntakeService {
	validate := validator.New()
	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &intakeService{
		contactRepo: contactRepo,
		quoteRepo:   quoteRepo,
		validate:    validate,
		logger:      logger,
	}
}

func (s *intakeService) SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = trimOptional(input.Phone)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if err := s.validate.Struct(input); err != nil {
		return nil, newInvalidInputError(err)
	}

	message := &domain.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    domain.ContactStatusUnread,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, storageError("submit contact", err)
	}

	s.logger.Info("Contact message received", zap.String("contact_id", message.ID.String()))
	return message, nil
}

func (s *intakeService) SubmitQuote(ctx context.Context, input QuoteInput) (*domain.QuoteRequest, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = trimOptional(input.Phone)
	input.Company = strings.TrimSpace(input.Company)
	input.ProductInterest = trimOptional(input.ProductInterest)
	input.Message = strings.TrimSpace(input.Message)

	if err := s.validate.Struct(input); err != nil {
		return nil, newInvalidInputError(err)
	}

	quote := &domain.QuoteRequest{
		ID:              uuid.New(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Company:         input.Company,
		ProductInterest: input.ProductInterest,
		Message:         input.Message,
		Status:          domain.QuoteStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, storageError("submit quote", err)
	}

	s.logger.Info("Quote request received",
		zap.String("quote_id", quote.ID.String()),
		zap.String("company", quote.Company),
	)
	return quote, nil
}

func (s *intakeService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, storageError("list contact messages", err)
	}
	return messages, nil
}

func (s *intakeService) ListQuoteRequests(ctx context.Context) ([]*domain.QuoteRequest, error) {
	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, storageError("list quote requests", err)
	}
	return quotes, nil
}

// trimOptional trims an optional value; blank values become absent
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
