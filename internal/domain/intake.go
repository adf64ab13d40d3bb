package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusUnread = "unread"
	QuoteStatusPending  = "pending"
)

// ContactMessage is a submission of the contact form
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// QuoteRequest is a submission of the quote form
type QuoteRequest struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Company         string    `json:"company" db:"company"`
	ProductInterest *string   `json:"product_interest,omitempty" db:"product_interest"`
	Message         string    `json:"message" db:"message"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Stats holds the company figures shown on the home page
type Stats struct {
	HappyClients      int `json:"happy_clients"`
	YearsExperience   int `json:"years_experience"`
	ProjectsCompleted int `json:"projects_completed"`
	OnTimeDelivery    int `json:"on_time_delivery"`
}
