package controller

import (
	"net/http"

	"enoki-admin/core/controller"
	"enoki-admin/core/errors"
	"enoki-admin/core/logger"
	"enoki-admin/modules/rfid/dto"
	"enoki-admin/modules/rfid/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard origin is enforced by the CORS middleware upstream
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RFIDController struct {
	controller.BaseController
	Client   *service.BridgeClient
	Hub      *service.Hub
	Presence *service.PresenceService
	Address  string
}

func NewRFIDController(client *service.BridgeClient, hub *service.Hub, presence *service.PresenceService, address string) *RFIDController {
	return &RFIDController{
		BaseController: controller.NewBaseController(),
		Client:         client,
		Hub:            hub,
		Presence:       presence,
		Address:        address,
	}
}

// GetStatus handles GET /rfid/status
// @Summary Get RFID bridge status
// @Description Reports bridge connectivity, the pulse flag, and the last event
// @Tags RFID
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BridgeStatusResponse
// @Router /private/rfid/status [get]
func (ctrl *RFIDController) GetStatus(c echo.Context) error {
	resp := dto.BridgeStatusResponse{
		Enabled:     true,
		Connected:   ctrl.Client.Connected(),
		Pulsing:     ctrl.Client.Pulsing(),
		Subscribers: ctrl.Hub.SubscriberCount(),
		Address:     ctrl.Address,
	}
	if evt := ctrl.Client.LastEvent(); !evt.IsZero() {
		resp.LastEvent = evt
	}
	return ctrl.SuccessResponse(c, resp, "get bridge status success")
}

// GetRecentScans handles GET /rfid/recent-scans
// @Summary List recent badge scans
// @Description Returns the most recently scanned tags, newest first
// @Tags RFID
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RecentScansResponse
// @Router /private/rfid/recent-scans [get]
func (ctrl *RFIDController) GetRecentScans(c echo.Context) error {
	tags := ctrl.Presence.RecentScans(c.Request().Context(), 20)
	return ctrl.SuccessResponse(c, dto.RecentScansResponse{Tags: tags}, "get recent scans success")
}

// LiveFeed upgrades the request to a websocket and streams badge events until
// the client hangs up. Events are pushed by the hub; reads are drained only to
// detect the close.
func (ctrl *RFIDController) LiveFeed(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "websocket upgrade failed")
	}

	ctrl.Hub.Add(conn)
	logger.Debug("Live-feed subscriber connected", "remote", conn.RemoteAddr().String())

	defer func() {
		ctrl.Hub.Remove(conn)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
