package repository

import (
	"context"
	"encoding/json"

	"service_documents/internal/domain/entities"
	"service_documents/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuotePaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentGormRepository)(nil)

func NewQuotePaymentGormRepository(db *gorm.DB) *QuotePaymentGormRepository {
	return &QuotePaymentGormRepository{db: db}
}

func (r *QuotePaymentGormRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	row := quotePaymentRow{
		ID:          p.ID,
		ServiceID:   p.ServiceID,
		QuoteNumber: p.QuoteNumber,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Date:        p.Date.UTC(),
		Status:      string(p.Status),
	}
	if len(p.ProviderPayloadRaw) > 0 && json.Valid(p.ProviderPayloadRaw) {
		row.ProviderPayloadRaw = datatypes.JSON(p.ProviderPayloadRaw)
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentGormRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	var rows []quotePaymentRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return entities.QuotePayment{}, err
	}
	if len(rows) == 0 {
		return entities.QuotePayment{}, nil
	}
	return fromQuotePaymentRow(rows[0]), nil
}

// ListByQuote returns the payments of one quote, oldest first.
func (r *QuotePaymentGormRepository) ListByQuote(ctx context.Context, serviceID, quoteNumber string) ([]entities.QuotePayment, error) {
	var rows []quotePaymentRow
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND quote_number = ?", serviceID, quoteNumber).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.QuotePayment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuotePaymentRow(row))
	}
	return out, nil
}

func fromQuotePaymentRow(row quotePaymentRow) entities.QuotePayment {
	p := entities.QuotePayment{
		ID:                 row.ID,
		ServiceID:          row.ServiceID,
		QuoteNumber:        row.QuoteNumber,
		Amount:             row.Amount,
		Currency:           row.Currency,
		Date:               row.Date.UTC(),
		Status:             entities.PaymentStatus(row.Status),
		ProviderPayloadRaw: json.RawMessage(row.ProviderPayloadRaw),
	}
	if len(row.ProviderPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(row.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
