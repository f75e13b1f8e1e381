package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	aprobacionhandler "grc-maturity-backend/lib/aprobacion"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
	aprobacionapimodels "grc-maturity-backend/models/api/aprobacion"
)

type aprobacionApiController struct {
	controllers.BaseAPIController
}

func InitAprobacionApiRouters(app fiber.Router) {
	controller := aprobacionApiController{}
	app.Route("aprobacion", func(router fiber.Router) {
		router.Get("pendientes", controller.listPendientes)
		router.Post("proyecto/:id/solicitar", controller.solicitar)
		router.Get("proyecto/:id", controller.listByProyecto)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("aprobar", controller.aprobar)
			idRoute.Put("rechazar", controller.rechazar)
		})
	})
}

// @Summary Solicitar aprobación de cierre
// @Tags Aprobación
// @Description Envía el proyecto a validación con la evidencia de cierre de brecha
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID del proyecto"
// @Param	body body	 aprobacionapimodels.SolicitudData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/proyecto/{id}/solicitar [post]
func (c *aprobacionApiController) solicitar(ctx *fiber.Ctx) error {
	proyectoID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload aprobacionapimodels.SolicitudData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := aprobacionhandler.Instance.Solicitar(empresaID, userID, proyectoID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error solicitando la aprobación de cierre")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Aprobar cierre
// @Tags Aprobación
// @Description El validador aprueba la solicitud y el proyecto queda cerrado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la solicitud"
// @Param	body body	 aprobacionapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/{id}/aprobar [put]
func (c *aprobacionApiController) aprobar(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload aprobacionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	validadorID := middleware.GetUserID(ctx)
	hMsg, err := aprobacionhandler.Instance.Aprobar(empresaID, validadorID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error aprobando el cierre del proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Rechazar cierre
// @Tags Aprobación
// @Description El validador rechaza la solicitud y el proyecto vuelve a ejecución
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la solicitud"
// @Param	body body	 aprobacionapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/{id}/rechazar [put]
func (c *aprobacionApiController) rechazar(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload aprobacionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.ValidateRechazo(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	validadorID := middleware.GetUserID(ctx)
	hMsg, err := aprobacionhandler.Instance.Rechazar(empresaID, validadorID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error rechazando el cierre del proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Obtener solicitud
// @Tags Aprobación
// @Description Obtener solicitud de aprobación por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=aprobacionapimodels.AprobacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/{id} [get]
func (c *aprobacionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	resp, err := aprobacionhandler.Instance.GetByID(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la solicitud de aprobación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Historial del proyecto
// @Tags Aprobación
// @Description Historial de solicitudes de aprobación del proyecto
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID del proyecto"
// @Success 200 {object} apimodels.Response{data=[]aprobacionapimodels.AprobacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/proyecto/{id} [get]
func (c *aprobacionApiController) listByProyecto(ctx *fiber.Ctx) error {
	proyectoID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, err := aprobacionhandler.Instance.ListByProyecto(empresaID, proyectoID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el historial de aprobaciones")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Solicitudes pendientes
// @Tags Aprobación
// @Description Solicitudes pendientes asignadas al validador autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]aprobacionapimodels.AprobacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/aprobacion/pendientes [get]
func (c *aprobacionApiController) listPendientes(ctx *fiber.Ctx) error {
	empresaID := middleware.GetUserEmpresa(ctx)
	validadorID := middleware.GetUserID(ctx)
	list, err := aprobacionhandler.Instance.ListPendientes(empresaID, validadorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo las solicitudes pendientes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
