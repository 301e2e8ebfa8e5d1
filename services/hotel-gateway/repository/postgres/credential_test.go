package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

func setupRepository(t *testing.T) (repository.Credential, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewCredentialRepository(db, logger.NoOpLogger()), mock
}

func TestCredentialRepository_GetOverride(t *testing.T) {
	repo, mock := setupRepository(t)

	rows := sqlmock.NewRows([]string{"id", "supplier_code", "client_id", "credentials", "created_at", "updated_at", "deleted_at"}).
		AddRow("01HZX0000000000000000000AB", "acme", "client-9", "ciphertext", time.Now(), time.Now(), nil)
	mock.ExpectQuery(`SELECT \* FROM "credential_overrides" WHERE \(supplier_code = \$1 AND client_id = \$2\)`).
		WillReturnRows(rows)

	override, err := repo.GetOverride(context.Background(), "acme", "client-9")
	require.NoError(t, err)
	assert.Equal(t, "acme", override.SupplierCode)
	assert.Equal(t, "ciphertext", override.Credentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_GetOverride_NotFound(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "credential_overrides"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOverride(context.Background(), "acme", "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredentialRepository_GetOverride_Error(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "credential_overrides"`).
		WillReturnError(errors.New("connection lost"))

	_, err := repo.GetOverride(context.Background(), "acme", "client-9")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get credential override")
}

func TestCredentialRepository_Upsert(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectExec(`INSERT INTO "credential_overrides" .* ON CONFLICT \("supplier_code","client_id"\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	override := &model.CredentialOverride{SupplierCode: "acme", ClientID: "client-9", Credentials: "ciphertext"}
	require.NoError(t, repo.Upsert(context.Background(), override))
	assert.Len(t, override.ID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Delete(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectExec(`UPDATE "credential_overrides" SET "deleted_at"=\$1 WHERE \(supplier_code = \$2 AND client_id = \$3\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "acme", "client-9"))

	mock.ExpectExec(`UPDATE "credential_overrides" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "acme", "missing"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
