package domain

import "time"

type Organization struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	CreatedOn    time.Time `json:"created_on"`
}
