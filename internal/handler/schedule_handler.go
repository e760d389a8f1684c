package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yasmin-center/tanseeq-backend/internal/allocation"
	"github.com/yasmin-center/tanseeq-backend/internal/config"
	"github.com/yasmin-center/tanseeq-backend/internal/middleware"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
	"github.com/yasmin-center/tanseeq-backend/internal/response"
	"github.com/yasmin-center/tanseeq-backend/internal/roster"
	"github.com/yasmin-center/tanseeq-backend/internal/service"
)

// ScheduleHandler handles coordinator-facing allocation runs.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	cfg             *config.Config
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, cfg *config.Config) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, cfg: cfg}
}

// CreateRun godoc
// POST /api/v1/coordinator/runs
// Accepts the three roster files as multipart form fields ("groups",
// "examiners", "rooms") plus optional "students_per_examiner" and "shifts"
// overrides, runs the allocation pipeline, and returns the stored run.
func (h *ScheduleHandler) CreateRun(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	opts := service.RunOptions{Shifts: c.PostForm("shifts")}
	if raw := c.PostForm("students_per_examiner"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidCap)
			return
		}
		opts.StudentsPerExaminer = n
	}

	files := make(map[string]service.RosterFile, 3)
	for _, field := range []string{"groups", "examiners", "rooms"} {
		file, header, err := c.Request.FormFile(field)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
			return
		}
		defer file.Close()

		if header.Size > h.cfg.MaxUploadBytes {
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
			return
		}
		files[field] = rosterFile(file, header)
	}

	run, err := h.scheduleService.ExecuteRun(c.Request.Context(), claims.CoordinatorID,
		files["groups"], files["examiners"], files["rooms"], opts)
	if err != nil {
		h.failRun(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"run": run})
}

// ListRuns godoc
// GET /api/v1/coordinator/runs
// Lists the coordinator's past runs with pagination, newest first.
func (h *ScheduleHandler) ListRuns(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	runs, pagination, err := h.scheduleService.ListRuns(c.Request.Context(), claims.CoordinatorID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"runs": runs}, pagination)
}

// GetRun godoc
// GET /api/v1/coordinator/runs/:id
// Returns one stored run with its full reports and timetable.
func (h *ScheduleHandler) GetRun(c *gin.Context) {
	run, ok := h.lookupRun(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"run": run})
}

// ExportRun godoc
// GET /api/v1/coordinator/runs/:id/export
// Streams the run's timetable and reports as an XLSX workbook.
func (h *ScheduleHandler) ExportRun(c *gin.Context) {
	run, ok := h.lookupRun(c)
	if !ok {
		return
	}

	workbook, err := service.ExportTimetable(run)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("timetable-%s.xlsx", run.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; nothing useful to send anymore.
		c.Abort()
	}
}

func (h *ScheduleHandler) lookupRun(c *gin.Context) (run *model.ScheduleRun, ok bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return nil, false
	}

	run, err = h.scheduleService.GetRun(c.Request.Context(), claims.CoordinatorID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return nil, false
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return nil, false
	}
	return run, true
}

// failRun maps pipeline and parsing failures onto API error codes.
func (h *ScheduleHandler) failRun(c *gin.Context, err error) {
	var rosterErr *service.RosterError
	switch {
	case errors.As(err, &rosterErr):
		if errors.Is(err, roster.ErrUnsupportedFormat) {
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
			return
		}
		response.Fail(c, http.StatusBadRequest, response.ErrRosterParse)
	case errors.Is(err, allocation.ErrNoShifts):
		response.Fail(c, http.StatusBadRequest, response.ErrNoShifts)
	case errors.Is(err, allocation.ErrInvalidCap):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidCap)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

func rosterFile(file multipart.File, header *multipart.FileHeader) service.RosterFile {
	return service.RosterFile{Reader: file, Filename: header.Filename}
}
