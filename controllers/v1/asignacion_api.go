package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	asignacionhandler "grc-maturity-backend/lib/asignacion"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
	asignacionapimodels "grc-maturity-backend/models/api/asignacion"
)

type asignacionApiController struct {
	controllers.BaseAPIController
}

func InitAsignacionApiRouters(app fiber.Router) {
	controller := asignacionApiController{}
	app.Route("asignacion", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", middleware.EmpresaAdminRequired(), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", middleware.EmpresaAdminRequired(), controller.delete)
			idRoute.Put("revisar", middleware.EmpresaAdminRequired(), controller.revisar)
			idRoute.Put("progreso", controller.refrescarProgreso)
		})
	})
}

// @Summary Crear asignación
// @Tags Asignación
// @Description Asigna una dimensión o la encuesta completa a un usuario
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 asignacionapimodels.AsignacionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion [post]
func (c *asignacionApiController) create(ctx *fiber.Ctx) error {
	var payload asignacionapimodels.AsignacionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := asignacionhandler.Instance.Crear(empresaID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando la asignación")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Listado de asignaciones
// @Tags Asignación
// @Description Listado paginado con filtros por evaluación, usuario, dimensión y estado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 asignacionapimodels.AsignacionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]asignacionapimodels.AsignacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion/list [post]
func (c *asignacionApiController) list(ctx *fiber.Ctx) error {
	var payload asignacionapimodels.AsignacionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, rowCount, err := asignacionhandler.Instance.List(empresaID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el listado de asignaciones")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Obtener asignación
// @Tags Asignación
// @Description Obtener asignación por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=asignacionapimodels.AsignacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion/{id} [get]
func (c *asignacionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	resp, err := asignacionhandler.Instance.GetByID(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la asignación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Revisar asignación
// @Tags Asignación
// @Description Aprueba o rechaza una asignación pendiente de revisión
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 asignacionapimodels.RevisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion/{id}/revisar [put]
func (c *asignacionApiController) revisar(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload asignacionapimodels.RevisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := asignacionhandler.Instance.Revisar(empresaID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error revisando la asignación")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Refrescar progreso
// @Tags Asignación
// @Description Recalcula contadores, porcentaje y estado de la asignación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion/{id}/progreso [put]
func (c *asignacionApiController) refrescarProgreso(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	err = asignacionhandler.Instance.RefrescarProgreso(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error refrescando el progreso de la asignación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar asignación
// @Tags Asignación
// @Description Eliminar asignación por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/asignacion/{id} [delete]
func (c *asignacionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	err = asignacionhandler.Instance.Delete(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la asignación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
