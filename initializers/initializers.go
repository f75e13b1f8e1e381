package initializers

import (
	"context"
	"time"

	"grc-maturity-backend/config"
	"grc-maturity-backend/fiberlog"
	aprobacionhandler "grc-maturity-backend/lib/aprobacion"
	asignacionhandler "grc-maturity-backend/lib/asignacion"
	asignacionworker "grc-maturity-backend/lib/asignacion/worker"
	authhandler "grc-maturity-backend/lib/auth"
	calculonivelhandler "grc-maturity-backend/lib/calculo-nivel"
	xlsexport "grc-maturity-backend/lib/export/xls"
	notificacionhandler "grc-maturity-backend/lib/notificacion"
	notificacionworker "grc-maturity-backend/lib/notificacion/worker"
	proyectohandler "grc-maturity-backend/lib/proyecto"
	reportehandler "grc-maturity-backend/lib/reporte"
	respuestahandler "grc-maturity-backend/lib/respuesta"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	notificacionhandler.NewHandler()
	asignacionhandler.NewHandler()
	respuestahandler.NewHandler()
	calculonivelhandler.NewHandler()
	proyectohandler.NewHandler()
	aprobacionhandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	reportehandler.NewHandler()
	go initWorkers(ctx)
}

// se lanzan con un retardo inicial para diluir la carga del arranque
func initWorkers(ctx context.Context) {
	if !makeTimeGap(ctx) {
		return
	}
	// Barrido de asignaciones vencidas
	asignacionworker.StartWorker(ctx)
	if !makeTimeGap(ctx) {
		return
	}
	// Envío de correos de notificaciones pendientes
	notificacionworker.StartWorker(ctx)
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
