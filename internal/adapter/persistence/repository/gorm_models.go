package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// serviceRow is the relational form of a service record.
type serviceRow struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)"`
	Name      string         `gorm:"type:varchar(255)"`
	Documents datatypes.JSON `gorm:"type:json;default:'[]'"`
	History   datatypes.JSON `gorm:"type:json;default:'[]'"`
	Version   int64          `gorm:"not null;default:0"`
}

func (serviceRow) TableName() string { return "services" }

type quotePaymentRow struct {
	ID                 string         `gorm:"primaryKey;type:varchar(128)"`
	ServiceID          string         `gorm:"type:varchar(64);index:idx_quote_payments_quote"`
	QuoteNumber        string         `gorm:"type:varchar(64);index:idx_quote_payments_quote"`
	Amount             float64        `gorm:"not null;default:0"`
	Currency           string         `gorm:"type:varchar(8)"`
	Date               time.Time      `gorm:"index"`
	Status             string         `gorm:"type:varchar(20)"`
	ProviderPayloadRaw datatypes.JSON `gorm:"type:json"`
}

func (quotePaymentRow) TableName() string { return "quote_payments" }

// MigrateGorm adds any missing tables and columns, then backfills the JSON
// columns of rows written before they existed to empty arrays.
func MigrateGorm(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	for _, m := range []interface{}{&serviceRow{}, &quotePaymentRow{}} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}

	backfills := []string{
		"UPDATE services SET documents = '[]' WHERE documents IS NULL",
		"UPDATE services SET history = '[]' WHERE history IS NULL",
		"UPDATE services SET version = 0 WHERE version IS NULL",
	}
	for _, stmt := range backfills {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("backfill: %w", err)
		}
	}
	return nil
}
