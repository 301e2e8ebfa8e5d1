package model

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Credential is a supplier login pair
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Valid reports whether both fields are present
func (c Credential) Valid() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// CredentialOverride stores a client-specific supplier login
type CredentialOverride struct {
	ID           string         `gorm:"type:char(26);primaryKey"`
	SupplierCode string         `gorm:"type:varchar(50);not null;uniqueIndex:supplier_code_client_id"`
	ClientID     string         `gorm:"type:varchar(64);not null;uniqueIndex:supplier_code_client_id"`
	Credentials  string         `gorm:"type:text;not null"` // Encrypted JSON
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (c *CredentialOverride) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = ulid.Make().String()
	}
	return nil
}
