package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
)

const testUserID = 7

// serve executa a requisição pelo router, com o usuário já autenticado quando roleID > 0
func serve(routes []router.Route, method, target string, body io.Reader, roleID int) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, body)
	if roleID > 0 {
		claims := &domain.Claims{UserID: testUserID, UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[apiErrors.APIError](t, rec).Code
}

func floatPtr(v float64) *float64 {
	return &v
}
