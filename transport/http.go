package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	pickingapp "github.com/muhammadheryan/wms-fulfillment/application/picking"
	waveapp "github.com/muhammadheryan/wms-fulfillment/application/wave"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	"github.com/muhammadheryan/wms-fulfillment/utils/errors"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	validatorx "github.com/muhammadheryan/wms-fulfillment/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	WaveApp    waveapp.WaveApp
	PickingApp pickingapp.PickingApp
}

type Options struct {
	JWTSecret      string
	InternalAPIKey string
	Metrics        *metrics.Metrics
}

func NewTransport(waveApp waveapp.WaveApp, pickingApp pickingapp.PickingApp, opts Options) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		WaveApp:    waveApp,
		PickingApp: pickingApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)

	// operator routes
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/waves", rh.CreateWave).Methods(http.MethodPost)
	v1.HandleFunc("/waves/{id:[0-9]+}", rh.GetWave).Methods(http.MethodGet)
	v1.HandleFunc("/waves/{id:[0-9]+}/allocate", rh.AllocateWave).Methods(http.MethodPost)
	v1.HandleFunc("/waves/{id:[0-9]+}/release", rh.ReleaseWave).Methods(http.MethodPost)
	v1.HandleFunc("/picklists/{id:[0-9]+}", rh.GetPickList).Methods(http.MethodGet)
	v1.HandleFunc("/tasks/{id:[0-9]+}/confirm", rh.ConfirmTask).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id:[0-9]+}/pick-status", rh.GetOrderPickStatus).Methods(http.MethodGet)
	v1.Use(AuthMiddleware(opts.JWTSecret))

	// service-to-service routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/waves/{id:[0-9]+}/release", rh.ReleaseWave).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(opts.InternalAPIKey))

	router.Use(LoggingMiddleware(opts.Metrics))

	return router
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// decodeAndValidate reads a JSON body into req and checks its validate tags.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// CreateWave handler
// @Summary Create wave
// @Description Create a new wave in PLANNED state
// @Tags Wave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateWaveRequest true "Create Wave Request"
// @Success 200 {object} model.WaveEntity
// @Failure 400 {object} Response
// @Router /v1/waves [post]
func (s *RestHandler) CreateWave(w http.ResponseWriter, r *http.Request) {
	var req model.CreateWaveRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WaveApp.CreateWave(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWave handler
// @Summary Get wave
// @Description Wave with its orders and recorded shortages
// @Tags Wave
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wave ID"
// @Success 200 {object} model.WaveDetail
// @Failure 404 {object} Response
// @Router /v1/waves/{id} [get]
func (s *RestHandler) GetWave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WaveApp.GetWave(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AllocateWave handler
// @Summary Allocate wave
// @Description Reserve stock for every line of the given orders. Shortages are reported, not rejected.
// @Tags Wave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wave ID"
// @Param request body model.WaveOrdersRequest true "Orders"
// @Success 200 {object} model.AllocationResult
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 423 {object} Response
// @Router /v1/waves/{id}/allocate [post]
func (s *RestHandler) AllocateWave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.WaveOrdersRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WaveApp.Allocate(r.Context(), id, req.OrderIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReleaseWave handler
// @Summary Release wave
// @Description Create pick lists and tasks for the given orders of an ALLOCATED wave
// @Tags Wave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wave ID"
// @Param request body model.WaveOrdersRequest true "Orders"
// @Success 200 {object} model.ReleaseResult
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 423 {object} Response
// @Router /v1/waves/{id}/release [post]
func (s *RestHandler) ReleaseWave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.WaveOrdersRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WaveApp.Release(r.Context(), id, req.OrderIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPickList handler
// @Summary Get pick list
// @Tags Picking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pick List ID"
// @Success 200 {object} model.PickListDetail
// @Failure 404 {object} Response
// @Router /v1/picklists/{id} [get]
func (s *RestHandler) GetPickList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PickingApp.GetPickList(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmTask handler
// @Summary Confirm pick task
// @Description Report the picked quantity for a task. Repeating a confirmation is a no-op.
// @Tags Picking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body model.ConfirmTaskRequest true "Picked quantity"
// @Success 200 {object} model.ConfirmTaskResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /v1/tasks/{id}/confirm [post]
func (s *RestHandler) ConfirmTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.ConfirmTaskRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PickingApp.ConfirmTask(r.Context(), id, req.QuantityPicked)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrderPickStatus handler
// @Summary Order pick status
// @Description Whether every pick task of the order is PICKED and packing may start
// @Tags Picking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderPickStatus
// @Failure 404 {object} Response
// @Router /v1/orders/{id}/pick-status [get]
func (s *RestHandler) GetOrderPickStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PickingApp.GetOrderPickStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
