package domain

import "time"

// Company is a partner business hosting students. Work centers are the
// physical sites where students actually train; the API always returns
// them nested under their company.
type Company struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	LegalName  string    `json:"legal_name" db:"legal_name"`
	TaxID      string    `json:"tax_id" db:"tax_id"`
	Address    string    `json:"address" db:"address"`
	City       string    `json:"city" db:"city"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	Website    *string   `json:"website" db:"website"`
	Active     bool      `json:"active" db:"active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	WorkCenters []WorkCenter `json:"work_centers" db:"-"`
}

// WorkCenter is a company site. TutorID links the company-side tutor
// responsible for students at that site, when one is assigned.
type WorkCenter struct {
	ID         int64     `json:"id" db:"id"`
	CompanyID  int64     `json:"company_id" db:"company_id"`
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	City       string    `json:"city" db:"city"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	TutorID    *int64    `json:"tutor_id" db:"tutor_id"`
	Active     bool      `json:"active" db:"active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
