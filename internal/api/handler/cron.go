package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

const (
	CronJobTypeInsightSnapshots = "insight-snapshots"
	CronJobTypeAll              = "all"
)

// SyncJob é uma sincronização agendada que também pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém as sincronizações que podem ser executadas pela API
type CronJobServices struct {
	InsightSnapshotSync SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := make(map[string]SyncJob)
	if s.InsightSnapshotSync != nil {
		jobs[CronJobTypeInsightSnapshots] = s.InsightSnapshotSync
	}
	return jobs
}

// RunCronJob dispara manualmente uma sincronização. Responde 409 se ela já estiver em execução.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.jobs()

		var selected []string
		switch {
		case cronType == CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
		case jobs[cronType] != nil:
			selected = []string{cronType}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": []string{CronJobTypeInsightSnapshots, CronJobTypeAll},
			})
			return
		}

		started := make([]string, 0, len(selected))
		for _, name := range selected {
			if jobs[name].TriggerManualSync() {
				started = append(started, name)
			}
		}

		if len(started) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Sincronização já em execução", map[string]any{"type": cronType})
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
