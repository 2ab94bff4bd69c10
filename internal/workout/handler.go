package workout

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lvassor/train-server/internal/telemetry/tracing"
	"github.com/lvassor/train-server/pkg"

	log "github.com/sirupsen/logrus"
)

type LogSessionResponse struct {
	SessionLogID string `json:"sessionLogId"`
}

type FeedbackRequest struct {
	ProgramID string      `json:"programId"`
	Week      int         `json:"week"`
	Exercise  ExerciseLog `json:"exercise"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.log")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sl SessionLog
	if err := json.NewDecoder(r.Body).Decode(&sl); err != nil {
		log.Tracef("log session, unmarshal json params: %s", err)
		http.Error(w, "log session failed", http.StatusBadRequest)
		return
	}
	if sl.ProgramID == "" || sl.UserID == "" {
		http.Error(w, "error, program id or user id empty", http.StatusBadRequest)
		return
	}
	if sl.Week < 1 {
		http.Error(w, "error, invalid week", http.StatusBadRequest)
		return
	}

	if err := handler.service.LogSession(ctx, &sl); err != nil {
		log.Errorf("failed to log session for program %s: %s", sl.ProgramID, err)
		http.Error(w, "error, failed to log session", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LogSessionResponse{SessionLogID: sl.ID})
	if err != nil {
		log.Errorf("failed to marshal log session response: %s", err)
		http.Error(w, "error, failed to log session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.feedback")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("feedback, unmarshal json params: %s", err)
		http.Error(w, "feedback failed", http.StatusBadRequest)
		return
	}
	if req.ProgramID == "" || req.Exercise.ExerciseID == "" {
		http.Error(w, "error, program id or exercise id empty", http.StatusBadRequest)
		return
	}

	feedback, err := handler.service.Evaluate(ctx, req.ProgramID, req.Week, req.Exercise)
	if err != nil {
		log.Errorf("failed to evaluate %s: %s", req.Exercise.ExerciseID, err)
		http.Error(w, "error, failed to evaluate exercise", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(feedback)
	if err != nil {
		log.Errorf("failed to marshal feedback: %s", err)
		http.Error(w, "error, failed to evaluate exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleListWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listWeek")
	defer span.End()

	programID := r.URL.Query().Get("programId")
	if programID == "" {
		http.Error(w, "error, program id empty", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		http.Error(w, "error, invalid week", http.StatusBadRequest)
		return
	}

	logs, err := handler.service.ListWeek(ctx, programID, week)
	if err != nil {
		log.Errorf("failed to list logs for %s week %d: %s", programID, week, err)
		http.Error(w, "error, failed to list session logs", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(logs)
	if err != nil {
		log.Errorf("failed to marshal session logs: %s", err)
		http.Error(w, "error, failed to list session logs", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
