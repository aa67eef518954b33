package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/response"
	"Beacon/internal/pkg/viewledger"
	"Beacon/internal/service"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

func (s *EngagementHandler) Vote(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.engagementSvc.Vote(c.Request.Context(), slug, req.VoterID, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *EngagementHandler) GetState(c *gin.Context) {
	isAdmin := c.GetBool(consts.IsAdminKey)
	slug := c.Param("slug")
	voterID := c.Query("voter_id")

	state, err := s.engagementSvc.State(c.Request.Context(), slug, voterID, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// TrackView 浏览上报：去重账本随 Cookie 往返，仅在实际计数时回写
func (s *EngagementHandler) TrackView(c *gin.Context) {
	slug := c.Param("slug")
	now := time.Now()

	raw, _ := c.Cookie(consts.ViewLedgerCookie)
	ledger := viewledger.Decode(raw)

	view, err := s.engagementSvc.TrackView(c.Request.Context(), slug, ledger, now)
	if err != nil {
		response.Error(c, err)
		return
	}

	if view.Incremented {
		encoded, err := ledger.Encode()
		if err != nil {
			log.ErrorContext(c.Request.Context(), "Encode view ledger", "err", err)
		} else {
			maxAge := int(consts.ViewDedupWindow / time.Second)
			c.SetCookie(consts.ViewLedgerCookie, encoded, maxAge, "/", "", false, true)
		}
	}

	response.Success(c, view)
}
