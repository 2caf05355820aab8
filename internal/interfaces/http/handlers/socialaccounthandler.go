package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkdeck/internal/application/social/dto"
	"linkdeck/internal/shared/constants"
	"linkdeck/internal/shared/logger"
	"linkdeck/internal/shared/utils"
)

// SocialAccountService is the application surface the handler depends on.
type SocialAccountService interface {
	ConnectInstagramAccount(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error)
	ConnectYoutubeChannel(ctx context.Context, userID uint, req dto.ConnectYoutubeChannelRequest) (*dto.ConnectYoutubeChannelResponse, error)
	DisconnectInstagramAccount(ctx context.Context, userID uint, businessAccountID string) error
	DisconnectYoutubeChannel(ctx context.Context, userID uint, channelID string) error
	ListLinkedAccounts(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error)
	StartInstagramConnect(ctx context.Context, userID uint) (*dto.InstagramConnectURLResponse, error)
	ListCandidates(ctx context.Context, state, code string) (*dto.ListCandidatesResponse, error)
	GetPublishingLimit(ctx context.Context, userID uint, businessAccountID string) (*dto.PublishingLimitResponse, error)
}

// SocialAccountHandler handles linked-account HTTP requests
type SocialAccountHandler struct {
	service SocialAccountService
	logger  logger.Interface
}

// NewSocialAccountHandler creates a new SocialAccountHandler
func NewSocialAccountHandler(service SocialAccountService, logger logger.Interface) *SocialAccountHandler {
	return &SocialAccountHandler{
		service: service,
		logger:  logger,
	}
}

// currentUserID extracts the authenticated user from the request context.
func (h *SocialAccountHandler) currentUserID(c *gin.Context) (uint, bool) {
	userIDInterface, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		h.logger.Error("user_id not found in context")
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		h.logger.Error("invalid user_id type in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return 0, false
	}

	return userID, true
}

// ListLinkedAccounts handles GET /social/accounts
// @Summary List linked social accounts
// @Tags social
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.LinkedAccountsResponse}
// @Router /social/accounts [get]
func (h *SocialAccountHandler) ListLinkedAccounts(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	view, err := h.service.ListLinkedAccounts(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to list linked accounts", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, view)
}

// StartInstagramConnect handles GET /social/instagram/connect
// @Summary Start the Instagram picker flow
// @Tags social
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.InstagramConnectURLResponse}
// @Router /social/instagram/connect [get]
func (h *SocialAccountHandler) StartInstagramConnect(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.service.StartInstagramConnect(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to start instagram connect", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}

// InstagramCallback handles GET /social/instagram/callback
// @Summary Resolve picker callback into connectable accounts
// @Tags social
// @Produce json
// @Param state query string true "one-time state token"
// @Param code query string true "authorization code"
// @Success 200 {object} utils.APIResponse{data=dto.ListCandidatesResponse}
// @Router /social/instagram/callback [get]
func (h *SocialAccountHandler) InstagramCallback(c *gin.Context) {
	if providerErr := c.Query("error"); providerErr != "" {
		h.logger.Warnw("picker callback returned provider error", "error", providerErr)
		utils.ErrorResponse(c, http.StatusBadRequest, constants.GetOAuthErrorMessageFromString(providerErr))
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if state == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, constants.GetOAuthErrorMessage(constants.OAuthErrorMissingState))
		return
	}
	if code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, constants.GetOAuthErrorMessage(constants.OAuthErrorMissingCode))
		return
	}

	resp, err := h.service.ListCandidates(c.Request.Context(), state, code)
	if err != nil {
		h.logger.Errorw("failed to resolve picker callback", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}

// ConnectInstagramAccount handles POST /social/instagram/accounts
// @Summary Connect a picked Instagram business account
// @Tags social
// @Accept json
// @Produce json
// @Param request body dto.ConnectInstagramAccountRequest true "picked candidate"
// @Success 201 {object} utils.APIResponse{data=dto.ConnectInstagramAccountResponse}
// @Router /social/instagram/accounts [post]
func (h *SocialAccountHandler) ConnectInstagramAccount(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req dto.ConnectInstagramAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.ConnectInstagramAccount(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "account connected")
}

// ConnectYoutubeChannel handles POST /social/youtube/channels
// @Summary Connect a YouTube channel
// @Tags social
// @Accept json
// @Produce json
// @Param request body dto.ConnectYoutubeChannelRequest true "channel details"
// @Success 201 {object} utils.APIResponse{data=dto.ConnectYoutubeChannelResponse}
// @Router /social/youtube/channels [post]
func (h *SocialAccountHandler) ConnectYoutubeChannel(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req dto.ConnectYoutubeChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.ConnectYoutubeChannel(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "channel connected")
}

// DisconnectInstagramAccount handles DELETE /social/instagram/accounts/:businessAccountID
// @Summary Disconnect a linked Instagram account
// @Tags social
// @Produce json
// @Param businessAccountID path string true "instagram business account id"
// @Success 200 {object} utils.APIResponse
// @Router /social/instagram/accounts/{businessAccountID} [delete]
func (h *SocialAccountHandler) DisconnectInstagramAccount(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	businessAccountID := c.Param("businessAccountID")
	if businessAccountID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "business account ID is required")
		return
	}

	if err := h.service.DisconnectInstagramAccount(c.Request.Context(), userID, businessAccountID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "account disconnected")
}

// DisconnectYoutubeChannel handles DELETE /social/youtube/channels/:channelID
// @Summary Disconnect a linked YouTube channel
// @Tags social
// @Produce json
// @Param channelID path string true "youtube channel id"
// @Success 200 {object} utils.APIResponse
// @Router /social/youtube/channels/{channelID} [delete]
func (h *SocialAccountHandler) DisconnectYoutubeChannel(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	channelID := c.Param("channelID")
	if channelID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "channel ID is required")
		return
	}

	if err := h.service.DisconnectYoutubeChannel(c.Request.Context(), userID, channelID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "channel disconnected")
}

// GetPublishingLimit handles GET /social/instagram/accounts/:businessAccountID/publishing-limit
// @Summary Get content publishing quota for a linked account
// @Tags social
// @Produce json
// @Param businessAccountID path string true "instagram business account id"
// @Success 200 {object} utils.APIResponse{data=dto.PublishingLimitResponse}
// @Router /social/instagram/accounts/{businessAccountID}/publishing-limit [get]
func (h *SocialAccountHandler) GetPublishingLimit(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	businessAccountID := c.Param("businessAccountID")
	if businessAccountID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "business account ID is required")
		return
	}

	resp, err := h.service.GetPublishingLimit(c.Request.Context(), userID, businessAccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}
