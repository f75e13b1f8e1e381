package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	notificacionhandler "grc-maturity-backend/lib/notificacion"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
	notificacionapimodels "grc-maturity-backend/models/api/notificacion"
)

type notificacionApiController struct {
	controllers.BaseAPIController
}

func InitNotificacionApiRouters(app fiber.Router) {
	controller := notificacionApiController{}
	app.Route("notificacion", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("count", controller.countNoLeidas)
		router.Put("leidas", controller.marcarTodasLeidas)
		router.Put(":id/leida", controller.marcarLeida)
	})
}

// @Summary Bandeja de notificaciones
// @Tags Notificación
// @Description Listado paginado de notificaciones del usuario autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificacionapimodels.NotificacionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificacionapimodels.NotificacionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/notificacion/list [post]
func (c *notificacionApiController) list(ctx *fiber.Ctx) error {
	var payload notificacionapimodels.NotificacionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := notificacionhandler.Instance.List(empresaID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo las notificaciones")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Notificaciones sin leer
// @Tags Notificación
// @Description Cantidad de notificaciones sin leer del usuario autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/notificacion/count [get]
func (c *notificacionApiController) countNoLeidas(ctx *fiber.Ctx) error {
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	total, err := notificacionhandler.Instance.CountNoLeidas(empresaID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error contando las notificaciones sin leer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(total))
}

// @Summary Marcar notificación leída
// @Tags Notificación
// @Description Marca la notificación como leída
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/notificacion/{id}/leida [put]
func (c *notificacionApiController) marcarLeida(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	err = notificacionhandler.Instance.MarcarLeida(empresaID, userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error marcando la notificación como leída")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Marcar todas leídas
// @Tags Notificación
// @Description Marca todas las notificaciones del usuario como leídas
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/notificacion/leidas [put]
func (c *notificacionApiController) marcarTodasLeidas(ctx *fiber.Ctx) error {
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	err := notificacionhandler.Instance.MarcarTodasLeidas(empresaID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error marcando las notificaciones como leídas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
