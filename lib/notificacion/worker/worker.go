package notificacionworker

import (
	"context"
	"time"

	notificacionhandler "grc-maturity-backend/lib/notificacion"
	baseworker "grc-maturity-backend/lib/utils/base-worker"
)

// StartWorker lanza el barrido periódico de correos de notificación
// pendientes. Solo se envían notificaciones ya confirmadas en la base.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("NotificacionEmailWorker", 20*time.Second, 1*time.Minute),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	enviados, err := notificacionhandler.Instance.EnviarCorreosPendientes()
	if err != nil {
		logger.WithError(err).Error("Error en el barrido de correos pendientes")
		return
	}
	if enviados > 0 {
		logger.WithField("enviados", enviados).Info("Correos de notificación enviados")
	}
}
