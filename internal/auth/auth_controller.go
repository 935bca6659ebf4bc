package auth

import (
	"net/http"

	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/middleware"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/token"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/bccpune/crickclub/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// AuthController signs members up and in. Sessions are stateless JWTs over
// the player registry.
type AuthController struct {
	players player.PlayerRepository
	config  *config.Config
	clock   clockwork.Clock
}

func NewAuthController(players player.PlayerRepository, cfg *config.Config, clock clockwork.Clock) *AuthController {
	return &AuthController{players: players, config: cfg, clock: clock}
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token  string         `json:"token"`
	Player *player.Player `json:"player"`
}

// Register godoc
// @Summary Register a member account
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration details"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := ac.players.GetByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing accounts")
		return
	}
	if existing != nil {
		responses.Conflict(c, "An account with this email already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		responses.InternalServerError(c, "Failed to register")
		return
	}

	p := player.Player{
		ID:               uuid.NewString(),
		FullName:         req.FullName,
		Email:            req.Email,
		RegistrationDate: ac.clock.Now(),
		DateOfBirth:      ac.clock.Now(),
		PasswordHash:     hash,
	}
	if err := ac.players.Create(&p); err != nil {
		log.Error().Err(err).Msg("failed to create account")
		responses.InternalServerError(c, "Failed to register")
		return
	}

	jwt, err := token.GenerateJWT(p.ID, p.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue session token")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registered successfully", AuthResponse{Token: jwt, Player: &p})
}

// Login godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login details"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p, err := ac.players.GetByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up account")
		return
	}
	if p == nil || p.PasswordHash == "" || !utils.CheckPassword(p.PasswordHash, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	jwt, err := token.GenerateJWT(p.ID, p.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue session token")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in", AuthResponse{Token: jwt, Player: p})
}

// GetProfile godoc
// @Summary Current member's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=player.Player}
// @Router /auth/me [get]
// @Security BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	id, err := middleware.GetPlayerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	p, err := ac.players.GetByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch profile")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}
