package controller

import (
	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/modules/kiosk/dto"
	"enoki-admin/modules/kiosk/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type KioskController struct {
	controller.BaseController
	KioskService service.KioskServiceInterface
}

func NewKioskController(svc service.KioskServiceInterface) *KioskController {
	return &KioskController{
		BaseController: controller.NewBaseController(),
		KioskService:   svc,
	}
}

// PrivatePageTeacher handles POST /kiosk/page
// @Summary Page a teacher
// @Description Front desk pages a teacher for a student; the page enters the live queue
// @Tags Kiosk
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PageRequest true "Page details"
// @Success 200 {object} dto.PageResponse
// @Router /private/kiosk/page [post]
func (ctrl *KioskController) PrivatePageTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.PageRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	page, appErr := ctrl.KioskService.Page(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, page, "page teacher success")
}

func (ctrl *KioskController) PrivateCompletePage(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CompletePageRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.PageID == uuid.Nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "pageId is required", nil)
	}

	if appErr := ctrl.KioskService.Complete(ctx, requestData); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, nil, "complete page success")
}

func (ctrl *KioskController) PrivateGetQueue(c echo.Context) error {
	ctx := c.Request().Context()

	queue, appErr := ctrl.KioskService.Queue(ctx)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, queue, "get queue success")
}

func (ctrl *KioskController) PrivateGetRecentActivity(c echo.Context) error {
	ctx := c.Request().Context()

	activity, appErr := ctrl.KioskService.RecentActivity(ctx)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, activity, "get recent activity success")
}

func (ctrl *KioskController) PrivateGetMetrics(c echo.Context) error {
	ctx := c.Request().Context()

	metrics, appErr := ctrl.KioskService.Metrics(ctx)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}

	return ctrl.SuccessResponse(c, metrics, "get metrics success")
}
