package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberflow/barberflow-api/internal/auth"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newLoginRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(db, auth.NewTokenManager("test-secret"), nil)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r
}

func expectUserLookup(t *testing.T, mock sqlmock.Sqlmock, password, orgStatus string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "organization_id", "full_name", "email", "password_hash", "role"}).
			AddRow(7, 2, "Dona Maria", "dona@salao.com", hash, "owner"))
	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE "organizations"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "status"}).
			AddRow(2, "Salão da Maria", "salao-da-maria", orgStatus))
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	db, mock := newMockDB(t)
	r := newLoginRouter(t, db)

	expectUserLookup(t, mock, "segredo123", "active")

	w := postLogin(r, `{"email":"dona@salao.com","password":"segredo123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), "salao-da-maria")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuspendedOrganization(t *testing.T) {
	db, mock := newMockDB(t)
	r := newLoginRouter(t, db)

	expectUserLookup(t, mock, "segredo123", "suspended")

	w := postLogin(r, `{"email":"dona@salao.com","password":"segredo123"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account_suspended")
	// A suspended organization never gets a token, even with the right
	// password.
	assert.NotContains(t, w.Body.String(), "token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	r := newLoginRouter(t, db)

	expectUserLookup(t, mock, "segredo123", "active")

	w := postLogin(r, `{"email":"dona@salao.com","password":"errada"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
	assert.NotContains(t, w.Body.String(), "token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	r := newLoginRouter(t, db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "organization_id", "full_name", "email", "password_hash", "role"}))

	w := postLogin(r, `{"email":"ninguem@salao.com","password":"tanto-faz"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
	assert.NoError(t, mock.ExpectationsWereMet())
}
