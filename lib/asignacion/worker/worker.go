package asignacionworker

import (
	"context"
	"time"

	asignacionhandler "grc-maturity-backend/lib/asignacion"
	baseworker "grc-maturity-backend/lib/utils/base-worker"
)

// StartWorker lanza el barrido periódico de asignaciones vencidas
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("AsignacionVencidaWorker", 30*time.Second, 60*time.Minute),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	marcadas, err := asignacionhandler.Instance.MarcarVencidas()
	if err != nil {
		logger.WithError(err).Error("Error en el barrido de asignaciones vencidas")
		return
	}
	if marcadas > 0 {
		logger.WithField("marcadas", marcadas).Info("Asignaciones marcadas como vencidas")
	}
}
