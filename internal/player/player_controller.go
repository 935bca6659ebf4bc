package player

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// PlayerController handles the club member registry.
type PlayerController struct {
	repo   PlayerRepository
	config *config.Config
	clock  clockwork.Clock
}

func NewPlayerController(repo PlayerRepository, cfg *config.Config, clock clockwork.Clock) *PlayerController {
	return &PlayerController{repo: repo, config: cfg, clock: clock}
}

type CreatePlayerRequest struct {
	FullName     string `json:"full_name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	DateOfBirth  string `json:"date_of_birth" binding:"omitempty"`
	Gender       string `json:"gender" binding:"omitempty,max=20"`
	Role         string `json:"role" binding:"omitempty,max=50"`
	State        string `json:"state" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	PhotoURL     string `json:"photo_url" binding:"omitempty,url"`
	JerseyNumber *int   `json:"jersey_number" binding:"omitempty,min=0,max=999"`
}

type UpdatePlayerRequest struct {
	FullName     string `json:"full_name" binding:"omitempty,min=2,max=100"`
	DateOfBirth  string `json:"date_of_birth" binding:"omitempty"`
	Gender       string `json:"gender" binding:"omitempty,max=20"`
	Role         string `json:"role" binding:"omitempty,max=50"`
	State        string `json:"state" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	PhotoURL     string `json:"photo_url" binding:"omitempty,url"`
	JerseyNumber *int   `json:"jersey_number" binding:"omitempty,min=0,max=999"`
}

// parseDOB accepts the roster date layouts and falls back to today.
func (pc *PlayerController) parseDOB(raw string) time.Time {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return pc.clock.Now()
}

// CreatePlayer godoc
// @Summary Register a new club member
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player details"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /players [post]
// @Security BearerAuth
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := pc.repo.GetByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing players")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A player with this email already exists")
		return
	}

	p := Player{
		ID:               uuid.NewString(),
		FullName:         req.FullName,
		Email:            req.Email,
		DateOfBirth:      pc.parseDOB(req.DateOfBirth),
		Gender:           req.Gender,
		Role:             req.Role,
		State:            req.State,
		Country:          req.Country,
		PhotoURL:         req.PhotoURL,
		JerseyNumber:     req.JerseyNumber,
		RegistrationDate: pc.clock.Now(),
	}
	if err := pc.repo.Create(&p); err != nil {
		log.Error().Err(err).Msg("failed to create player")
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player registered successfully", p)
}

// GetPlayers godoc
// @Summary List club members
// @Tags Players
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search by name or email"
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	players, total, err := pc.repo.GetAll(page, pageSize, c.Query("search"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", players, total, page, pageSize)
}

// GetPlayer godoc
// @Summary Get one club member
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	p, err := pc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePlayer godoc
// @Summary Update a club member
// @Tags Players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [put]
// @Security BearerAuth
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.FullName != "" {
		p.FullName = req.FullName
	}
	if req.DateOfBirth != "" {
		p.DateOfBirth = pc.parseDOB(req.DateOfBirth)
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	if req.Role != "" {
		p.Role = req.Role
	}
	if req.State != "" {
		p.State = req.State
	}
	if req.Country != "" {
		p.Country = req.Country
	}
	if req.PhotoURL != "" {
		p.PhotoURL = req.PhotoURL
	}
	if req.JerseyNumber != nil {
		p.JerseyNumber = req.JerseyNumber
	}

	if err := pc.repo.Update(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Remove a club member
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [delete]
// @Security BearerAuth
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	p, err := pc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	if err := pc.repo.Delete(p.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed", nil)
}

// ImportRoster godoc
// @Summary Import players from a CSV roster
// @Description Upserts one player per row. Bad rows are reported and skipped;
// @Description the rest of the batch still imports.
// @Tags Players
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV roster file"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /players/import [post]
// @Security BearerAuth
func (pc *PlayerController) ImportRoster(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.BadRequest(c, "A CSV file is required in the 'file' field")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		responses.BadRequest(c, "Could not open the uploaded file")
		return
	}
	defer f.Close()

	players, rowErrs := ParseRoster(f, pc.clock.Now())
	imported := 0
	for i := range players {
		if err := pc.repo.Upsert(&players[i]); err != nil {
			log.Error().Err(err).Str("player", players[i].Email).Msg("roster upsert failed")
			rowErrs = append(rowErrs, RowError{Row: 0, Message: players[i].Email + ": " + err.Error()})
			continue
		}
		imported++
	}

	responses.SendSuccess(c, http.StatusOK, "Roster import finished", gin.H{
		"imported": imported,
		"failed":   len(rowErrs),
		"errors":   rowErrs,
	})
}

// ExportRoster godoc
// @Summary Export all players as a CSV roster
// @Tags Players
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /players/export [get]
// @Security BearerAuth
func (pc *PlayerController) ExportRoster(c *gin.Context) {
	players, _, err := pc.repo.GetAll(1, 10000, "")
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="players.csv"`)
	if err := WriteRoster(c.Writer, players); err != nil {
		log.Error().Err(err).Msg("roster export failed")
	}
}
