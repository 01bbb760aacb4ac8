package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

func requestWithRole(t *testing.T, role user.Role) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "7b51a2c4-3f0e-4d1a-9b6f-2c8e5d4a1f03",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(context.Background(), token, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminOnly(okHandler).ServeHTTP(rec, requestWithRole(t, user.RoleAdmin))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminOnly_RejectsOtherRoles(t *testing.T) {
	for _, role := range []user.Role{user.RoleHR, user.RoleManager, user.RoleEmployee, user.RoleCandidate} {
		rec := httptest.NewRecorder()
		AdminOnly(okHandler).ServeHTTP(rec, requestWithRole(t, role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role=%s", role)
	}
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	mw := RequireRole(user.RoleCandidate)
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, requestWithRole(t, user.RoleCandidate))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole_RejectsUnlistedRole(t *testing.T) {
	mw := RequireRole(user.RoleCandidate)
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, requestWithRole(t, user.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RejectsMissingClaims(t *testing.T) {
	mw := RequireRole(user.RoleAdmin)
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
