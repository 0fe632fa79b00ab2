// Package model defines domain entities for the application.
package model

import "time"

// User represents a journal account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	TotalEntries int64     `json:"total_entries"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
