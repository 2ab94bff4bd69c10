package program

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvassor/train-server/internal/catalog"
	"github.com/lvassor/train-server/internal/telemetry/tracing"
	"github.com/lvassor/train-server/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// GenerateRequest is the questionnaire payload the app sends.
type GenerateRequest struct {
	UserID         string   `json:"userId"`
	Experience     string   `json:"experience"`
	Goals          []string `json:"goals"`
	DaysPerWeek    int      `json:"daysPerWeek"`
	SessionMinutes int      `json:"sessionMinutes"`
	TotalWeeks     int      `json:"totalWeeks"`
	EquipmentIDs   []string `json:"equipmentIds"`
	Injuries       []string `json:"injuries"`
	TargetMuscles  []string `json:"targetMuscles"`
	Rating         int      `json:"rating"`
}

// maxTargetMuscles caps how many priority muscles a profile can carry.
const maxTargetMuscles = 3

func (req *GenerateRequest) toProfile() (Profile, error) {
	experience, err := ParseExperience(req.Experience)
	if err != nil {
		return Profile{}, err
	}
	goals, err := ParseGoals(req.Goals)
	if err != nil {
		return Profile{}, err
	}
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 6 {
		return Profile{}, errors.New("daysPerWeek must be between 1 and 6")
	}
	if req.Rating < 0 || req.Rating > 100 {
		return Profile{}, errors.New("rating must be between 0 and 100")
	}
	if len(req.TargetMuscles) > maxTargetMuscles {
		return Profile{}, errors.New("too many target muscles")
	}

	return Profile{
		UserID:            req.UserID,
		Experience:        experience,
		Goals:             goals,
		DaysPerWeek:       req.DaysPerWeek,
		SessionMinutes:    req.SessionMinutes,
		TotalWeeks:        req.TotalWeeks,
		OwnedEquipmentIDs: req.EquipmentIDs,
		Injuries:          req.Injuries,
		TargetMuscles:     req.TargetMuscles,
		Rating:            req.Rating,
	}, nil
}

type SwapRequest struct {
	DayIndex      int    `json:"dayIndex"`
	ExerciseID    string `json:"exerciseId"`
	ReplacementID string `json:"replacementId,omitempty"`

	// profile fields needed to rebuild the candidate pool
	Experience   string   `json:"experience"`
	EquipmentIDs []string `json:"equipmentIds"`
	Injuries     []string `json:"injuries"`
}

type SwapResponse struct {
	Alternatives []catalog.Exercise `json:"alternatives"`
	Applied      bool               `json:"applied"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.generate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("generate program, unmarshal json params: %s", err)
		http.Error(w, "generate program failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	profile, err := req.toProfile()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := handler.service.Generate(ctx, profile)
	if err != nil {
		log.Errorf("failed to generate program for %s: %s", req.UserID, err)
		http.Error(w, "error, failed to generate program", http.StatusInternalServerError)
		return
	}

	programJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal program: %s", err)
		http.Error(w, "error, failed to generate program", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.get")
	defer span.End()

	programID := mux.Vars(r)["id"]
	if programID == "" {
		http.Error(w, "error, program id empty", http.StatusBadRequest)
		return
	}

	p, err := handler.service.Get(ctx, programID)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get program %s: %s", programID, err)
		http.Error(w, "error, failed to get program", http.StatusInternalServerError)
		return
	}

	programJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal program %s: %s", programID, err)
		http.Error(w, "error, failed to get program", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programJson, http.StatusOK)
}

// HandleSwap lists swap alternatives for one assigned exercise and, when a
// replacement id is supplied, applies it to the stored program.
func (handler *Handler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.swap")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	programID := mux.Vars(r)["id"]
	if programID == "" {
		http.Error(w, "error, program id empty", http.StatusBadRequest)
		return
	}

	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("swap exercise, unmarshal json params: %s", err)
		http.Error(w, "swap exercise failed", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	experience, err := ParseExperience(req.Experience)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile := Profile{
		Experience:        experience,
		OwnedEquipmentIDs: req.EquipmentIDs,
		Injuries:          req.Injuries,
	}

	resp := SwapResponse{}
	resp.Alternatives, err = handler.service.ListAlternatives(ctx, req.ExerciseID, profile)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to list alternatives for %s: %s", req.ExerciseID, err)
		http.Error(w, "error, failed to list alternatives", http.StatusInternalServerError)
		return
	}

	if req.ReplacementID != "" {
		if err := handler.service.ApplySwap(ctx, programID, req.DayIndex, req.ExerciseID, req.ReplacementID); err != nil {
			if errors.Is(err, ErrProgramNotFound) {
				http.Error(w, "program not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, ErrSwapNotAllowed) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("failed to apply swap on %s: %s", programID, err)
			http.Error(w, "error, failed to apply swap", http.StatusInternalServerError)
			return
		}
		resp.Applied = true
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal swap response: %s", err)
		http.Error(w, "error, failed to list alternatives", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
