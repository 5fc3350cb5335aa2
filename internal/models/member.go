package models

import "time"

// Member is a cooperative member account as served to the mobile app. The
// backend owns the record; the client only ever holds a read-only snapshot.
type Member struct {
	ID              int        `json:"id" example:"7"`
	RFIDCardNumber  string     `json:"rfid_card_number" example:"0012345678"`
	FirstName       string     `json:"first_name" example:"Juan"`
	LastName        string     `json:"last_name" example:"Dela Cruz"`
	FullName        string     `json:"full_name" example:"Juan Dela Cruz"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	MemberTypeName  string     `json:"member_type_name,omitempty" example:"Regular"`
	Balance         Money      `json:"balance"`
	UtangBalance    Money      `json:"utang_balance"`
	TotalPatronage  Money      `json:"total_patronage"`
	IsActive        bool       `json:"is_active"`
	DateJoined      time.Time  `json:"date_joined"`
	LastTransaction *time.Time `json:"last_transaction"`
}
