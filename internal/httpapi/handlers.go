package httpapi

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// MoveRequest is the body of POST /api/move.
type MoveRequest struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	Promotion string `json:"promotion"` // "q", "queen", ... or empty
}

// MoveResponse is the reply to a successful move.
type MoveResponse struct {
	Outcome *output.JSONOutcome `json:"outcome"`
	State   *output.JSONState   `json:"state"`
}

// CandidateJSON is one destination of a selected piece.
type CandidateJSON struct {
	To      string `json:"to"`
	Capture bool   `json:"capture,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) state(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) moves(c *gin.Context) {
	sq, err := chess.ParseSquare(c.Param("square"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	candidates, err := s.session.Select(sq)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]CandidateJSON, 0, len(candidates))
	for _, m := range candidates {
		out = append(out, CandidateJSON{To: m.To.String(), Capture: m.IsCapture()})
	}
	c.JSON(http.StatusOK, gin.H{"square": sq.String(), "moves": out})
}

func (s *Server) move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid move request"})
		return
	}
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo := chess.NoKind
	if req.Promotion != "" {
		kind, ok := chess.ParseKind(req.Promotion)
		if !ok || !chess.IsPromotionKind(kind) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid promotion " + req.Promotion})
			return
		}
		promo = kind
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	outcome, err := s.session.Play(from, to, promo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MoveResponse{Outcome: output.OutcomeToJSON(outcome), State: s.snapshot()})
}

func (s *Server) reset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
	c.JSON(http.StatusOK, s.snapshot())
}

// statusFor maps session errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrPieceNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrNotYourTurn), stderrors.Is(err, errors.ErrGameOver):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrPromotionRequired),
		stderrors.Is(err, errors.ErrInvalidKind):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
