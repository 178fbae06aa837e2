package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const codeOption = "hm_facebook_domain_verification_code"

var optionColumns = []string{"id", "name", "value", "created_at", "updated_at", "deleted_at"}

func newMockRepo(t *testing.T) (*OptionRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewOptionRepository(db), mock
}

func TestOptionGetStoredValue(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `options` WHERE `name` = \\?").
		WillReturnRows(sqlmock.NewRows(optionColumns).AddRow(1, codeOption, "abc123", now, now, nil))

	v, err := repo.Get(codeOption)
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionGetMissingReadsEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT \\* FROM `options` WHERE `name` = \\?").
		WillReturnRows(sqlmock.NewRows(optionColumns))

	v, err := repo.Get(codeOption)
	require.NoError(t, err)
	assert.Equal(t, "", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionGetDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	errConn := errors.New("connection refused")
	mock.ExpectQuery("SELECT \\* FROM `options`").WillReturnError(errConn)

	v, err := repo.Get(codeOption)
	assert.ErrorIs(t, err, errConn)
	assert.Equal(t, "", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionSetUpserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO `options` .* ON DUPLICATE KEY UPDATE `value`=VALUES\\(`value`\\),`updated_at`=VALUES\\(`updated_at`\\)").
		WithArgs(codeOption, "abc123", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(codeOption, "abc123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionSetDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	errConn := errors.New("connection refused")
	mock.ExpectExec("INSERT INTO `options`").WillReturnError(errConn)

	assert.ErrorIs(t, repo.Set(codeOption, "abc123"), errConn)
	assert.NoError(t, mock.ExpectationsWereMet())
}
