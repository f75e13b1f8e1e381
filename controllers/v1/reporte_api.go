package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	reportehandler "grc-maturity-backend/lib/reporte"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
)

type reporteApiController struct {
	controllers.BaseAPIController
}

func InitReporteApiRouters(app fiber.Router) {
	controller := reporteApiController{}
	app.Route("reporte", func(router fiber.Router) {
		router.Get("evaluacion/:id/matriz.xlsx", controller.matrizGapsXlsx)
		router.Get("evaluacion/:id/resumen.pdf", controller.resumenGapsPdf)
		router.Get("proyectos.xlsx", controller.proyectosXlsx)
	})
}

// @Summary Matriz de brechas en Excel
// @Tags Reporte
// @Description Exporta la matriz de brechas de la evaluación en formato xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evaluación"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/reporte/evaluacion/{id}/matriz.xlsx [get]
func (c *reporteApiController) matrizGapsXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	buffer, nombreArchivo, hMsg, err := reportehandler.Instance.MatrizGapsXlsx(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportando la matriz de brechas a Excel")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombreArchivo+`"`)
	return ctx.SendStream(buffer)
}

// @Summary Resumen de brechas en PDF
// @Tags Reporte
// @Description Exporta el resumen ejecutivo de brechas de la evaluación en formato pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evaluación"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/reporte/evaluacion/{id}/resumen.pdf [get]
func (c *reporteApiController) resumenGapsPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	contenido, nombreArchivo, hMsg, err := reportehandler.Instance.ResumenGapsPdf(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportando el resumen de brechas a PDF")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombreArchivo+`"`)
	return ctx.Send(contenido)
}

// @Summary Proyectos en Excel
// @Tags Reporte
// @Description Exporta el portafolio de proyectos de la empresa en formato xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/reporte/proyectos.xlsx [get]
func (c *reporteApiController) proyectosXlsx(ctx *fiber.Ctx) error {
	empresaID := middleware.GetUserEmpresa(ctx)
	buffer, nombreArchivo, err := reportehandler.Instance.ProyectosXlsx(empresaID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportando los proyectos a Excel")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombreArchivo+`"`)
	return ctx.SendStream(buffer)
}
