package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	calculonivelhandler "grc-maturity-backend/lib/calculo-nivel"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
)

type gapApiController struct {
	controllers.BaseAPIController
}

func InitGapApiRouters(app fiber.Router) {
	controller := gapApiController{}
	app.Route("gap", func(router fiber.Router) {
		router.Get("", controller.listByEmpresa)
		router.Post("asignacion/:id/calcular", middleware.EmpresaAdminRequired(), controller.calcular)
		router.Get("asignacion/:id", controller.getByAsignacion)
		router.Post("evaluacion/:id/recalcular", middleware.EmpresaAdminRequired(), controller.recalcular)
		router.Get("evaluacion/:id", controller.listByEvaluacion)
	})
}

// @Summary Calcular brecha
// @Tags GAP
// @Description Calcula y persiste la brecha de una asignación completada
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la asignación"
// @Success 200 {object} apimodels.Response{data=gapapimodels.CalculoNivelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/gap/asignacion/{id}/calcular [post]
func (c *gapApiController) calcular(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	item, hMsg, err := calculonivelhandler.Instance.CalcularGapAsignacion(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error calculando la brecha de la asignación")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Recalcular brechas de la evaluación
// @Tags GAP
// @Description Recalcula las brechas de todas las asignaciones completadas de la evaluación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evaluación"
// @Success 200 {object} apimodels.Response{data=gapapimodels.RecalculoResultado}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/gap/evaluacion/{id}/recalcular [post]
func (c *gapApiController) recalcular(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	resultado, err := calculonivelhandler.Instance.RecalcularEvaluacion(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error recalculando las brechas de la evaluación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resultado))
}

// @Summary Brecha de la asignación
// @Tags GAP
// @Description Obtiene el último cálculo de brecha de la asignación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la asignación"
// @Success 200 {object} apimodels.Response{data=gapapimodels.CalculoNivelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/gap/asignacion/{id} [get]
func (c *gapApiController) getByAsignacion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	item, err := calculonivelhandler.Instance.GetByAsignacion(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la brecha de la asignación")
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("la asignación no tiene brecha calculada"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Matriz de brechas de la evaluación
// @Tags GAP
// @Description Listado de brechas calculadas de la evaluación, ordenado por severidad
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evaluación"
// @Success 200 {object} apimodels.Response{data=[]gapapimodels.CalculoNivelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/gap/evaluacion/{id} [get]
func (c *gapApiController) listByEvaluacion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, err := calculonivelhandler.Instance.ListByEvaluacion(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la matriz de brechas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Brechas de la empresa
// @Tags GAP
// @Description Listado de todas las brechas calculadas de la empresa
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]gapapimodels.CalculoNivelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/gap [get]
func (c *gapApiController) listByEmpresa(ctx *fiber.Ctx) error {
	empresaID := middleware.GetUserEmpresa(ctx)
	list, err := calculonivelhandler.Instance.ListByEmpresa(empresaID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo las brechas de la empresa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
