package repository

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, MigrateGorm(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func sampleQuote(number string) entities.Document {
	return entities.Document{
		Kind:   entities.DocumentKindCotizacion,
		Number: &number,
		Date:   "2024-01-01",
		Client: &entities.Client{Name: "Acme"},
		Status: entities.DocumentStatusPendiente,
		Quote: &entities.QuoteDetails{
			Products: []entities.Product{{Description: "Widget", Quantity: 2, UnitPrice: 100}},
			Currency: "MXN",
		},
	}
}

func TestServiceRecordGormRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewServiceRecordGormRepository(db, logger.NewNop())
	require.NoError(t, db.Create(&serviceRow{ID: "42", Name: "Bomba", Documents: datatypes.JSON("[]"), History: datatypes.JSON("[]")}).Error)

	rec, err := repo.GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", rec.ID)
	assert.Empty(t, rec.Documents)
	assert.Equal(t, int64(0), rec.Version)

	require.NoError(t, repo.SaveDocuments(ctx, "42", []entities.Document{sampleQuote("COT-000001")}, 0))

	user := "ana"
	event := entities.NewHistoryEvent("cotizacion_created", "Cotización COT-000001 creada", &user, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveHistory(ctx, "42", []entities.HistoryEvent{event}, 1))

	rec, err = repo.GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Version)
	require.Len(t, rec.Documents, 1)
	assert.Equal(t, "COT-000001", rec.Documents[0].NumberValue())
	assert.Equal(t, "Widget", rec.Documents[0].Quote.Products[0].Description)
	require.Len(t, rec.History, 1)
	assert.Equal(t, "cotizacion_created", rec.History[0].Type)
	assert.Equal(t, "ana", *rec.History[0].User)
}

func TestServiceRecordGormRepository_Missing(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewServiceRecordGormRepository(db, logger.NewNop())

	rec, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, rec.ID)

	err = repo.SaveDocuments(ctx, "nope", nil, 0)
	assert.ErrorIs(t, err, interfaces.ErrServiceRecordNotFound)
}

func TestServiceRecordGormRepository_VersionConflict(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewServiceRecordGormRepository(db, logger.NewNop())
	require.NoError(t, db.Create(&serviceRow{ID: "42", Documents: datatypes.JSON("[]"), History: datatypes.JSON("[]"), Version: 3}).Error)

	err := repo.SaveDocuments(ctx, "42", []entities.Document{sampleQuote("A")}, 2)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	rec, err := repo.GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, rec.Documents, "a stale write must not persist")
}

func TestServiceRecordGormRepository_MalformedDocuments(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewServiceRecordGormRepository(db, logger.NewNop())
	require.NoError(t, db.Create(&serviceRow{ID: "bad", Name: "Bad", Documents: datatypes.JSON(`{"not":"an array"}`), History: datatypes.JSON("[]")}).Error)

	good, _ := json.Marshal([]entities.Document{sampleQuote("COT-1")})
	require.NoError(t, db.Create(&serviceRow{ID: "good", Name: "Good", Documents: datatypes.JSON(good), History: datatypes.JSON("[]")}).Error)

	_, err := repo.GetByID(ctx, "bad")
	assert.ErrorIs(t, err, errMalformedColumn)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "bad", all[0].ID)
	assert.Empty(t, all[0].Documents)
	assert.Len(t, all[1].Documents, 1)
}

func TestMigrateGorm_BackfillsNulls(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, db.Exec("INSERT INTO services (id, name, documents, history, version) VALUES ('old', 'Old', '[]', '[]', 0)").Error)
	require.NoError(t, db.Exec("UPDATE services SET documents = NULL WHERE id = 'old'").Error)

	require.NoError(t, MigrateGorm(ctx, db))

	var row serviceRow
	require.NoError(t, db.First(&row, "id = ?", "old").Error)
	assert.JSONEq(t, "[]", string(row.Documents))
}

func TestQuotePaymentGormRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewQuotePaymentGormRepository(db)

	base := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"p2", "p1"} {
		_, err := repo.Create(ctx, entities.QuotePayment{
			ID:                 id,
			ServiceID:          "42",
			QuoteNumber:        "COT-1",
			Amount:             116,
			Currency:           "MXN",
			Date:               base.Add(-time.Duration(i) * time.Hour),
			Status:             entities.PaymentStatusAprobado,
			ProviderPayloadRaw: json.RawMessage(`{"status":"approved"}`),
		})
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 116.0, got.Amount)
	assert.Equal(t, "approved", got.ProviderPayload["status"])

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.ListByQuote(ctx, "42", "COT-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, "p2", list[1].ID)

	none, err := repo.ListByQuote(ctx, "42", "COT-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
