package domain

import "time"

// Account exists only after a successful email verification; registration
// requests never create one directly.
type Account struct {
	ID             AccountID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"type:citext;uniqueIndex:ux_accounts_email" json:"email"`
	Name           string    `gorm:"not null" json:"name"`
	PasswordHash   []byte    `gorm:"not null" json:"-"`
	PasswordSalt   []byte    `gorm:"not null" json:"-"`
	PasswordParams []byte    `gorm:"not null" json:"-"`
	PasswordVer    int       `gorm:"not null;default:1" json:"-"`
	Privileged     bool      `gorm:"not null;default:false" json:"privileged"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}

func (Account) TableName() string { return "accounts" }

func (a *Account) GetHash() []byte       { return a.PasswordHash }
func (a *Account) GetSalt() []byte       { return a.PasswordSalt }
func (a *Account) GetParamsJSON() []byte { return a.PasswordParams }
func (a *Account) GetPasswordVer() int   { return a.PasswordVer }

// PendingRegistration is a provisional signup awaiting the emailed code.
// Email is deliberately not unique: repeated submissions coexist and the
// newest row wins at verification time.
type PendingRegistration struct {
	ID             AccountID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:citext;index:ix_pending_email"`
	Name           string    `gorm:"not null"`
	PasswordHash   []byte    `gorm:"not null"`
	PasswordSalt   []byte    `gorm:"not null"`
	PasswordParams []byte    `gorm:"not null"`
	PasswordVer    int       `gorm:"not null;default:1"`
	Code           string    `gorm:"type:char(6);not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (PendingRegistration) TableName() string { return "pending_registrations" }
