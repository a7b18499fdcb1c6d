package attendance

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/exceptions"
	"campushub-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AttendanceController struct {
	AttendanceUsecase contracts.AttendanceUsecase
	Log               *zap.Logger
}

func NewAttendanceController(attendanceUsecase contracts.AttendanceUsecase, logger *zap.Logger) *AttendanceController {
	return &AttendanceController{
		AttendanceUsecase: attendanceUsecase,
		Log:               logger,
	}
}

func (ctrl *AttendanceController) Mark(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.MarkAttendance)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// The marking teacher comes from the session, not the body.
	if staffID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string); ok && staffID != "" {
		request.StaffID = staffID
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttendanceUsecase.MarkAttendance(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MarkAttendanceSuccessMessage, response)
}

func (ctrl *AttendanceController) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.GetAttendance{
		ClassID: query.Get("class"),
		StaffID: query.Get("staffId"),
		Date:    query.Get("date"),
	}
	if rawHour := query.Get("hour"); rawHour != "" {
		hour, err := strconv.Atoi(rawHour)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAttendanceFieldsMissing(err))
			return
		}
		request.Hour = hour
	}

	// Validate request
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttendanceUsecase.GetAttendance(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttendanceSuccessMessage, response)
}
