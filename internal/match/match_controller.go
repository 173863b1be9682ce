package match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
	responses "github.com/DhavalSuthar-24/crease/pkg/matchresponse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo    MatchRepository
	service *ScoringService
}

func NewMatchController(repo MatchRepository, service *ScoringService) *MatchController {
	return &MatchController{repo: repo, service: service}
}

// respondError maps store and engine errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var persistErr *PersistError
	switch {
	case errors.Is(err, ErrMatchNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
	case scoring.IsValidation(err):
		responses.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case scoring.IsRuleViolation(err):
		responses.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.As(err, &persistErr):
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match; the stored state was kept: "+persistErr.Err.Error())
	default:
		responses.ErrorResponse(c, http.StatusInternalServerError, "Match operation failed: "+err.Error())
	}
}

// @Summary      List matches
// @Description  Pages through matches, newest match date first.
// @Tags         Matches
// @Produce      json
// @Param        status     query  string  false  "upcoming, live or completed"
// @Param        team       query  string  false  "Either side's name"
// @Param        page       query  int     false  "Page number"  default(1)
// @Param        page_size  query  int     false  "Page size"    default(10)
// @Success      200  {object}  map[string]interface{}  "Paginated matches"
// @Failure      500  {object}  map[string]interface{}  "Store failure"
// @Router       /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := ListFilter{
		Status: scoring.MatchStatus(c.Query("status")),
		Team:   c.Query("team"),
	}
	matches, total, err := mc.repo.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}
	for i := range matches {
		matches[i] = publicView(matches[i])
	}
	responses.PaginatedResponse(c, http.StatusOK, matches, page, pageSize, total)
}

// @Summary      Get match
// @Tags         Matches
// @Produce      json
// @Param        id   path  string  true  "Match ID"
// @Success      200  {object}  scoring.Match
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Router       /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	m, err := mc.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, publicView(*m))
}

// @Summary      Match summary
// @Description  Score line, run rates, target and result for viewers.
// @Tags         Matches
// @Produce      json
// @Param        id   path  string  true  "Match ID"
// @Success      200  {object}  scoring.Summary
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Router       /matches/{id}/summary [get]
func (mc *MatchController) GetMatchSummary(c *gin.Context) {
	m, err := mc.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, scoring.Summarize(*m))
}

// @Summary      Create match
// @Tags         Matches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        match  body  CreateMatchRequest  true  "Fixture details"
// @Success      201  {object}  scoring.Match
// @Failure      400  {object}  map[string]interface{}  "Malformed body"
// @Failure      422  {object}  map[string]interface{}  "Invalid teams or squads"
// @Router       /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m := req.toMatch(uuid.NewString())
	if err := mc.service.Create(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, m)
}

// @Summary      Replace match
// @Description  Stores a whole match document, e.g. a scorer's correction. A document without history keeps the stored undo history.
// @Tags         Matches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path  string         true  "Match ID"
// @Param        match  body  scoring.Match  true  "Full match document"
// @Success      200  {object}  scoring.Match
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Failure      409  {object}  map[string]interface{}  "Match is completed"
// @Failure      422  {object}  map[string]interface{}  "Invalid teams or squads"
// @Router       /matches/{id} [put]
func (mc *MatchController) ReplaceMatch(c *gin.Context) {
	var m scoring.Match
	if err := c.ShouldBindJSON(&m); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m.ID = c.Param("id")

	if err := mc.service.Replace(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, publicView(m))
}

// @Summary      Delete match
// @Tags         Matches
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Match ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Router       /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	if err := mc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// @Summary      Score an event
// @Description  Applies one scoring event and returns the new state with any prompts for the scorer.
// @Tags         Scoring
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path  string        true  "Match ID"
// @Param        event  body  EventRequest  true  "Scoring event"
// @Success      200  {object}  Result
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Failure      409  {object}  map[string]interface{}  "Event not allowed in the current state"
// @Failure      422  {object}  map[string]interface{}  "Invalid event"
// @Failure      429  {object}  map[string]interface{}  "Too many requests"
// @Router       /matches/{id}/events [post]
func (mc *MatchController) ApplyEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ev, err := req.Event()
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := mc.service.Apply(c.Request.Context(), c.Param("id"), ev)
	if err != nil {
		respondError(c, err)
		return
	}
	res.Match = publicView(res.Match)
	responses.SuccessResponse(c, http.StatusOK, res)
}

// @Summary      Undo last event
// @Tags         Scoring
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Match ID"
// @Success      200  {object}  Result
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Failure      409  {object}  map[string]interface{}  "Nothing to undo"
// @Router       /matches/{id}/undo [post]
func (mc *MatchController) UndoEvent(c *gin.Context) {
	res, err := mc.service.Undo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	res.Match = publicView(res.Match)
	responses.SuccessResponse(c, http.StatusOK, res)
}

// @Summary      Scoring context
// @Description  Batsmen, bowler and any run out awaiting completion.
// @Tags         Scoring
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Match ID"
// @Success      200  {object}  scoring.Context
// @Failure      404  {object}  map[string]interface{}  "Match not found"
// @Router       /matches/{id}/context [get]
func (mc *MatchController) GetScoringContext(c *gin.Context) {
	sc, err := mc.service.Context(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, sc)
}
