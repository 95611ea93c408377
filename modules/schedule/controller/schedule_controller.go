package controller

import (
	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/modules/schedule/dto"
	"enoki-admin/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// ScheduleController handles schedule validation HTTP requests
type ScheduleController struct {
	controller.BaseController
	Engine *service.Engine
}

func NewScheduleController(engine *service.Engine) *ScheduleController {
	return &ScheduleController{
		BaseController: controller.NewBaseController(),
		Engine:         engine,
	}
}

// ValidateSchedule handles POST /schedule/validate
// @Summary Validate a weekly schedule
// @Description Dry-run validation of a schedule in wire format; returns conflict descriptions
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ValidateScheduleRequest true "Schedule in wire format"
// @Success 200 {object} dto.ValidateScheduleResponse
// @Failure 400 {object} errors.AppError
// @Router /private/schedule/validate [post]
func (c *ScheduleController) ValidateSchedule(ctx echo.Context) error {
	var req dto.ValidateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	ws, err := dto.FromWireFormat(req.Schedule)
	if err != nil {
		return c.BadRequest(errors.ErrDataFormat, err.Error())
	}

	validationErrors := c.Engine.Validate(ws)
	resp := dto.ValidateScheduleResponse{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}

	return c.SuccessResponse(ctx, resp, "Schedule validated")
}
