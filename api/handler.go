// Package api wires the HTTP routes to the domain services: registration,
// login, and the authenticated account endpoints.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/convertapi/auth"
	"github.com/kbukum/convertapi/auth/password"
	"github.com/kbukum/convertapi/conversion"
	"github.com/kbukum/convertapi/credit"
	apperrors "github.com/kbukum/convertapi/errors"
	"github.com/kbukum/convertapi/logger"
	"github.com/kbukum/convertapi/server"
	"github.com/kbukum/convertapi/server/middleware"
	"github.com/kbukum/convertapi/user"
	"github.com/kbukum/convertapi/validation"
)

// conversionCost is the flat credit price of one conversion.
const conversionCost = 1

// Handler holds the dependencies of the HTTP API.
type Handler struct {
	users       *user.Store
	credits     *credit.Store
	conversions *conversion.Store
	auth        *auth.Service
	hasher      password.Hasher
	initial     int64
	log         *logger.Logger
}

// NewHandler creates the API handler. initialCredits is granted to every
// newly registered account.
func NewHandler(
	users *user.Store,
	credits *credit.Store,
	conversions *conversion.Store,
	authService *auth.Service,
	hasher password.Hasher,
	initialCredits int64,
	log *logger.Logger,
) *Handler {
	return &Handler{
		users:       users,
		credits:     credits,
		conversions: conversions,
		auth:        authService,
		hasher:      hasher,
		initial:     initialCredits,
		log:         log.WithComponent("api"),
	}
}

// RegisterRoutes mounts all API routes on the engine. Routes under the
// protected group require a valid bearer token.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/auth/register", h.Register)
	engine.POST("/auth/login", h.Login)

	protected := engine.Group("/", middleware.RequireAuth(h.auth.Identify))
	protected.GET("/users/me", h.Me)
	protected.GET("/credits/me", h.Credits)
	protected.GET("/conversions", h.ListConversions)
	protected.POST("/conversions", h.Convert)
}

// Register creates a new account and opens its credit account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	record, err := h.hasher.Hash(req.Password)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation(err.Error()))
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.Email, record)
	if errors.Is(err, user.ErrDuplicateEmail) {
		server.RespondWithError(c, apperrors.AlreadyExists("user"))
		return
	}
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	if _, err := h.credits.CreateAccount(c.Request.Context(), u.ID, h.initial); err != nil {
		// The account exists but has no ledger; surface the fault rather
		// than hand out a half-provisioned login.
		h.log.Error("Credit account creation failed after registration", map[string]interface{}{
			"user_id": u.ID.String(),
			"error":   err.Error(),
		})
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	server.RespondCreated(c, newUserResponse(u))
}

// Login verifies credentials and issues a bearer token. Every rejection is
// the same 401 regardless of cause.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	signed, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		server.RespondWithError(c, apperrors.InvalidCredentials())
		return
	}
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: signed, TokenType: "bearer"})
}

// Me returns the authenticated user's account.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	u, err := h.users.ByID(c.Request.Context(), identity)
	if errors.Is(err, user.ErrNotFound) {
		server.RespondWithError(c, apperrors.NotFound("user", identity.String()))
		return
	}
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	server.RespondOK(c, newUserResponse(u))
}

// Credits returns the authenticated user's balance and ledger.
func (h *Handler) Credits(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	account, err := h.credits.AccountFor(c.Request.Context(), identity)
	if errors.Is(err, credit.ErrNoAccount) {
		server.RespondWithError(c, apperrors.NotFound("credit account", ""))
		return
	}
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	history, err := h.credits.History(c.Request.Context(), identity)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	server.RespondOK(c, newCreditResponse(account, history))
}

// ListConversions returns the authenticated user's conversion history.
func (h *Handler) ListConversions(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	list, err := h.conversions.ListByUser(c.Request.Context(), identity)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	server.RespondOK(c, newConversionList(list))
}

// Convert charges the flat conversion cost and records the conversion.
func (h *Handler) Convert(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	desc := req.SourceFormat + " -> " + req.TargetFormat
	err := h.credits.Spend(c.Request.Context(), identity, conversionCost, desc)
	if errors.Is(err, credit.ErrInsufficient) {
		server.RespondWithError(c, apperrors.InsufficientCredits())
		return
	}
	if errors.Is(err, credit.ErrNoAccount) {
		server.RespondWithError(c, apperrors.NotFound("credit account", ""))
		return
	}
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	record := &conversion.Conversion{
		UserID:         identity,
		SourceFormat:   req.SourceFormat,
		TargetFormat:   req.TargetFormat,
		InputSizeBytes: req.InputSizeBytes,
		CreditsUsed:    conversionCost,
		Status:         conversion.StatusCompleted,
	}
	if err := h.conversions.Record(c.Request.Context(), record); err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	server.RespondCreated(c, newConversionResponse(record))
}
