package repository

import (
	"context"
	"fmt"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceRecordGormRepository persists service records in a SQL table with JSON
// columns. Postgres in deployments, SQLite in tests and local runs.

type ServiceRecordGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordGormRepository)(nil)

func NewServiceRecordGormRepository(db *gorm.DB, log *logger.Logger) *ServiceRecordGormRepository {
	return &ServiceRecordGormRepository{db: db, log: log.With("component", "ServiceRecordGormRepository")}
}

func (r *ServiceRecordGormRepository) GetByID(ctx context.Context, id string) (entities.ServiceRecord, error) {
	var rows []serviceRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(rows) == 0 {
		return entities.ServiceRecord{}, nil
	}

	rec, err := fromServiceRow(rows[0], true)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("service %s: %w", id, err)
	}
	return rec, nil
}

func (r *ServiceRecordGormRepository) ListAll(ctx context.Context) ([]entities.ServiceRecord, error) {
	var rows []serviceRow
	if err := r.db.WithContext(ctx).Select("id", "name", "documents", "version").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entities.ServiceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := fromServiceRow(row, false)
		if err != nil {
			r.log.Warn("skipping malformed documents column", "service_id", row.ID, "error", err)
			rec = entities.ServiceRecord{ID: row.ID, Name: row.Name, Documents: []entities.Document{}, History: []entities.HistoryEvent{}}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *ServiceRecordGormRepository) SaveDocuments(ctx context.Context, id string, docs []entities.Document, expectedVersion int64) error {
	raw, err := entities.EncodeDocuments(docs)
	if err != nil {
		return err
	}
	return r.save(ctx, id, "documents", raw, expectedVersion)
}

func (r *ServiceRecordGormRepository) SaveHistory(ctx context.Context, id string, history []entities.HistoryEvent, expectedVersion int64) error {
	raw, err := entities.EncodeHistory(history)
	if err != nil {
		return err
	}
	return r.save(ctx, id, "history", raw, expectedVersion)
}

func (r *ServiceRecordGormRepository) save(ctx context.Context, id, column string, payload []byte, expectedVersion int64) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&serviceRow{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			column:    datatypes.JSON(payload),
			"version": expectedVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&serviceRow{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return interfaces.ErrServiceRecordNotFound
	}
	return interfaces.ErrVersionConflict
}

func fromServiceRow(row serviceRow, withHistory bool) (entities.ServiceRecord, error) {
	docs, err := entities.DecodeDocuments(row.Documents)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("%w: documents: %v", errMalformedColumn, err)
	}
	history := []entities.HistoryEvent{}
	if withHistory {
		if history, err = entities.DecodeHistory(row.History); err != nil {
			return entities.ServiceRecord{}, fmt.Errorf("%w: history: %v", errMalformedColumn, err)
		}
	}
	return entities.ServiceRecord{
		ID:        row.ID,
		Name:      row.Name,
		Documents: docs,
		History:   history,
		Version:   row.Version,
	}, nil
}
