package models

import "gorm.io/gorm"

// User is the sole persisted entity. Email is the lookup key. Password holds
// either a bcrypt hash or the sentinel for accounts provisioned via federated
// login. Secret stays nil until the user submits one.
type User struct {
	gorm.Model
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"`
	Secret   *string `json:"secret,omitempty"`
}
