package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/usecase"
)

// maxUpload bounds a single face photo.
const maxUpload = 10 << 20

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(api gin.IRouter) {
	api.POST("/solve", h.handleSolve)
	api.POST("/solve-state", h.handleSolveState)
	api.POST("/validate", h.handleValidate)
	api.POST("/explain", h.handleExplain)
	api.GET("/attempts", h.handleAttempts)
	api.GET("/attempts/:id", h.handleAttempt)
}

// ---- Errors ----

type errorResp struct {
	Error      string          `json:"error"`
	Kind       string          `json:"kind"`
	Face       string          `json:"face,omitempty"`
	Missing    []string        `json:"missing,omitempty"`
	Counts     []countResp     `json:"counts,omitempty"`
	Duplicates []duplicateResp `json:"duplicates,omitempty"`
	Diagnostic string          `json:"diagnostic,omitempty"`
}

type countResp struct {
	Color string `json:"color"`
	Count int    `json:"count"`
	Delta int    `json:"delta"`
}

type duplicateResp struct {
	Color string   `json:"color"`
	Faces []string `json:"faces"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidImage), errors.Is(err, domain.ErrIncompleteCubeState):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMalformedCubeState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSolverRejected):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func faceNames(fs []domain.Face) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

func writeError(c *gin.Context, err error) {
	resp := errorResp{Error: err.Error(), Kind: domain.KindOf(err)}
	var (
		ie *domain.ImageError
		ne *domain.IncompleteError
		me *domain.MalformedError
		re *domain.RejectedError
	)
	switch {
	case errors.As(err, &ie):
		resp.Face = ie.Face.String()
	case errors.As(err, &ne):
		resp.Missing = faceNames(ne.Missing)
	case errors.As(err, &me):
		for _, cc := range me.Counts {
			resp.Counts = append(resp.Counts, countResp{Color: cc.Color.String(), Count: cc.Count, Delta: cc.Delta()})
		}
		for _, d := range me.Duplicates {
			resp.Duplicates = append(resp.Duplicates, duplicateResp{Color: d.Color.String(), Faces: faceNames(d.Faces)})
		}
	case errors.As(err, &re):
		resp.Diagnostic = re.Diagnostic
	}
	c.JSON(statusFor(err), resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResp{Error: msg, Kind: "BadRequest"})
}

// ---- Solve ----

type solveResp struct {
	AttemptID string            `json:"attemptId"`
	State     string            `json:"state"`
	Facelets  string            `json:"facelets"`
	Faces     map[string]string `json:"faces,omitempty"`
	Report    domain.Report     `json:"report"`
	Solution  string            `json:"solution"`
	Steps     []domain.Step     `json:"steps"`
	EngineMs  int64             `json:"engineMs"`
}

func toSolveResp(res *usecase.Result) solveResp {
	out := solveResp{
		AttemptID: res.AttemptID,
		State:     res.State.String(),
		Facelets:  res.Facelets,
		Report:    res.Report,
		Solution:  res.Solution.Raw,
		Steps:     res.Steps,
		EngineMs:  res.Stats.Duration.Milliseconds(),
	}
	if len(res.Grids) > 0 {
		out.Faces = make(map[string]string, len(res.Grids))
		for f, g := range res.Grids {
			out.Faces[f.String()] = g.String()
		}
	}
	return out
}

// handleSolve expects a multipart form with one file field per face,
// named after the face in lower case ("up", "right", ...).
func (h *Handler) handleSolve(c *gin.Context) {
	faces, err := readFaces(c)
	if errors.Is(err, http.ErrNotMultipart) {
		badRequest(c, "expected a multipart form with one file per face")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.UC.Solve(c.Request.Context(), faces)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSolveResp(res))
}

type stateReq struct {
	State string `json:"state" binding:"required"`
}

func (h *Handler) handleSolveState(c *gin.Context) {
	var req stateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	st, err := domain.ParseCubeState(req.State)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.UC.SolveState(c.Request.Context(), st)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSolveResp(res))
}

// ---- Validate ----

type validateResp struct {
	OK     bool          `json:"ok"`
	Report domain.Report `json:"report"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req stateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	st, err := domain.ParseCubeState(req.State)
	if err != nil {
		writeError(c, err)
		return
	}
	rep, err := h.UC.Validate(c.Request.Context(), st)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: true, Report: rep})
}

// ---- Explain ----

type explainReq struct {
	Moves string `json:"moves"`
}

type explainResp struct {
	Steps []domain.Step `json:"steps"`
}

func (h *Handler) handleExplain(c *gin.Context) {
	var req explainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, explainResp{Steps: h.UC.Explain(req.Moves)})
}

// ---- Attempts ----

type attemptsResp struct {
	Attempts []domain.Attempt `json:"attempts"`
}

func (h *Handler) handleAttempts(c *gin.Context) {
	limit := 50
	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	as, err := h.UC.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if as == nil {
		as = []domain.Attempt{}
	}
	c.JSON(http.StatusOK, attemptsResp{Attempts: as})
}

func (h *Handler) handleAttempt(c *gin.Context) {
	a, err := h.UC.Attempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
