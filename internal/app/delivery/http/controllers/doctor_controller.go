package controllers

import (
	"context"
	"net/http"
	"time"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	RequestTimeout time.Duration
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, requestTimeoutInSeconds int) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		RequestTimeout: requestTimeout(requestTimeoutInSeconds),
	}
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.GetDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) FindByIdentification(w http.ResponseWriter, r *http.Request) {
	identification := chi.URLParam(r, constvars.URLParamIdentification)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.FindByIdentification(ctx, identification)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.CreateDoctor)
	err := decodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Info("DoctorController.Create rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusCreated, constvars.CreateDoctorSuccessMessage, doctor)
}

// Update applies a partial update. Absent fields keep their stored value.
func (ctrl *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDoctor)
	err = decodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	existing, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	doctor, err := ctrl.DoctorUsecase.Update(ctx, existing, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.UpdateDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	existing, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	doctor, err := ctrl.DoctorUsecase.Delete(ctx, existing)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.DeleteDoctorSuccessMessage, doctor)
}
