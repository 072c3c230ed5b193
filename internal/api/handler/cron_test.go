package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
)

type stubSyncJob struct {
	busy      bool
	triggered int
}

func (s *stubSyncJob) TriggerManualSync() bool {
	if s.busy {
		return false
	}
	s.triggered++
	return true
}

func (s *stubSyncJob) GetStatus() map[string]any {
	return map[string]any{"running": s.busy}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		roleID         int
		busy           bool
		expectedStatus int
		expectedCode   string
		expectedRuns   int
	}{
		{name: "Snapshots", path: "/v1/cron/insight-snapshots/run", roleID: middleware.RoleAdmin, expectedStatus: http.StatusAccepted, expectedRuns: 1},
		{name: "Todas", path: "/v1/cron/all/run", roleID: middleware.RoleSupervisor, expectedStatus: http.StatusAccepted, expectedRuns: 1},
		{name: "Já em execução", path: "/v1/cron/insight-snapshots/run", roleID: middleware.RoleAdmin, busy: true, expectedStatus: http.StatusConflict, expectedCode: apiErrors.ErrSchedulerBusy},
		{name: "Tipo inválido", path: "/v1/cron/meta/run", roleID: middleware.RoleAdmin, expectedStatus: http.StatusBadRequest, expectedCode: apiErrors.ErrInvalidRequest},
		{name: "Analista não pode executar", path: "/v1/cron/all/run", roleID: middleware.RoleAnalyst, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &stubSyncJob{busy: tt.busy}

			rec := serve(CronJobs(CronJobServices{InsightSnapshotSync: job}), http.MethodPost, tt.path, nil, tt.roleID)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedRuns, job.triggered)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	job := &stubSyncJob{busy: true}

	rec := serve(CronJobs(CronJobServices{InsightSnapshotSync: job}), http.MethodGet, "/v1/cron", nil, middleware.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		map[string]any{CronJobTypeInsightSnapshots: map[string]any{"running": true}},
		decodeBody[map[string]any](t, rec),
	)
}

func TestNotFoundRoute(t *testing.T) {
	rec := serve(CronJobs(CronJobServices{}), http.MethodGet, "/v1/unknown", nil, middleware.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec))
}
