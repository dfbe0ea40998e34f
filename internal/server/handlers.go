package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeminuswork/readiness-check/internal/leads"
	"github.com/lifeminuswork/readiness-check/internal/narrative"
	"github.com/lifeminuswork/readiness-check/internal/rendering"
	"github.com/lifeminuswork/readiness-check/internal/scoring"
	"github.com/lifeminuswork/readiness-check/internal/session"
	"github.com/lifeminuswork/readiness-check/internal/types"
)

// leadSource tags rows appended to the lead sheet.
const leadSource = "readiness-check"

// themeResponse describes one questionnaire theme for the client.
type themeResponse struct {
	Theme     types.Theme `json:"theme"`
	Label     string      `json:"label"`
	Questions []string    `json:"questions"`
}

// createSessionResponse is the payload for POST /sessions.
type createSessionResponse struct {
	SessionID     uuid.UUID       `json:"session_id"`
	Themes        []themeResponse `json:"themes"`
	RatingMax     int             `json:"rating_max"`
	DefaultRating int             `json:"default_rating"`
}

// scoresResponse reports per-theme scores after a ratings submission.
type scoresResponse struct {
	Scores  types.ScoreSet `json:"scores"`
	Overall int            `json:"overall"`
}

// miniReportResponse pairs the preview bullets with the score snapshot and
// the preview chart. ChartPNG is base64-encoded and omitted when the chart
// could not be rendered.
type miniReportResponse struct {
	types.MiniReport
	Scores   types.ScoreSet `json:"scores"`
	Overall  int            `json:"overall"`
	ChartPNG string         `json:"chart_png,omitempty"`
}

// handleCreateSession starts a new questionnaire session and returns the
// question set so the client can render the sliders.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	state := s.store.Create()

	themes := make([]themeResponse, 0, len(types.Themes))
	for _, theme := range types.Themes {
		themes = append(themes, themeResponse{
			Theme:     theme,
			Label:     types.Label(theme),
			Questions: types.Questions[theme],
		})
	}

	s.jsonResponse(w, http.StatusCreated, createSessionResponse{
		SessionID:     state.ID,
		Themes:        themes,
		RatingMax:     types.RatingMax,
		DefaultRating: types.RatingMax / 2,
	})
}

// handleSubmitRatings stores the submitted slider values and returns the
// computed per-theme scores.
func (s *Server) handleSubmitRatings(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.SubmitRatingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ratings, err := parseRatings(req.Ratings)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	state.FirstName = req.FirstName
	state.Ratings = ratings
	state.Reflection = req.Reflection

	scores := scoring.ComputeScores(state.Ratings)
	s.jsonResponse(w, http.StatusOK, scoresResponse{
		Scores:  scores,
		Overall: scoring.Overall(scores),
	})
}

// handleMiniReport returns the free preview for the session's current
// ratings: the mini bullets plus the score snapshot and its chart.
func (s *Server) handleMiniReport(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scores := scoring.ComputeScores(state.Ratings)
	overall := scoring.Overall(scores)
	mini := s.provider.MiniReport(r.Context(), narrativeRequest(state, scores, overall))

	resp := miniReportResponse{
		MiniReport: mini,
		Scores:     scores,
		Overall:    overall,
	}

	// A failed chart render degrades to bullets and numbers only.
	if png, err := rendering.BuildChartPNG(scores); err != nil {
		log.Printf("Warning: preview chart render failed for session %s: %v", state.ID, err)
	} else {
		resp.ChartPNG = base64.StdEncoding.EncodeToString(png)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRequestCode issues a verification code for the given email and tries
// to deliver it. The code stays issued even when delivery fails; the caller
// learns the delivery outcome from the "sent" flag.
func (s *Server) handleRequestCode(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.RequestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.mailer == nil {
		err := &ErrMailUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	code := state.Gate.IssueCode(req.Email)

	sent := true
	if err := s.mailer.SendVerificationCode(r.Context(), req.Email, code, state.FirstName); err != nil {
		log.Printf("Warning: verification mail to %s failed: %v", req.Email, err)
		sent = false
	}

	s.jsonResponse(w, http.StatusAccepted, map[string]any{"sent": sent})
}

// handleCheckCode compares a submitted code against the session's issued one.
// A successful check also logs the lead, best-effort.
func (s *Server) handleCheckCode(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.CheckCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	verified := state.Gate.CheckCode(req.Code)
	if verified {
		s.logLead(r, state)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"verified": verified})
}

// handleReportPDF renders and returns the full report. The session must have
// passed the verification gate.
func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !state.Gate.Verified() {
		err := &ErrNotVerified{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := s.renderReport(r, state)
	if err != nil {
		log.Printf("Error rendering report for session %s: %v", state.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "report rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", rendering.DefaultReportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handleEmailReport renders the full report and mails it to the verified
// address as an attachment.
func (s *Server) handleEmailReport(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !state.Gate.Verified() {
		err := &ErrNotVerified{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if s.mailer == nil {
		err := &ErrMailUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := s.renderReport(r, state)
	if err != nil {
		log.Printf("Error rendering report for session %s: %v", state.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "report rendering failed")
		return
	}

	to := state.Gate.Email()
	if err := s.mailer.SendReportAttachment(r.Context(), to, pdf, rendering.DefaultReportFilename, state.FirstName); err != nil {
		log.Printf("Error mailing report to %s: %v", to, err)
		s.errorResponse(w, http.StatusBadGateway, "report mail delivery failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"sent": true})
}

// renderReport builds the narrative and the PDF for one session.
func (s *Server) renderReport(r *http.Request, state *session.State) ([]byte, error) {
	scores := scoring.ComputeScores(state.Ratings)
	overall := scoring.Overall(scores)
	content := s.provider.FullReport(r.Context(), narrativeRequest(state, scores, overall))
	return rendering.BuildPDF(state.FirstName, scores, overall, content, state.Reflection)
}

// logLead appends a captured-lead row. Failures are logged, never surfaced.
func (s *Server) logLead(r *http.Request, state *session.State) {
	if s.leads == nil {
		return
	}

	scores := scoring.ComputeScores(state.Ratings)
	lead := leads.Lead{
		Email:     state.Gate.Email(),
		FirstName: state.FirstName,
		Scores:    scores,
		Overall:   scoring.Overall(scores),
		Source:    leadSource,
	}
	if err := s.leads.Append(r.Context(), lead); err != nil {
		log.Printf("Warning: lead logging failed for %s: %v", lead.Email, err)
	}
}

// narrativeRequest assembles the narrative inputs from session state and
// already-computed scores.
func narrativeRequest(state *session.State, scores types.ScoreSet, overall int) narrative.Request {
	return narrative.Request{
		FirstName:  state.FirstName,
		Scores:     scores,
		Overall:    overall,
		Reflection: state.Reflection,
	}
}

// sessionFromRequest resolves the {id} path value to a live session.
func (s *Server) sessionFromRequest(r *http.Request) (*session.State, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}

	state := s.store.Get(id)
	if state == nil {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return state, nil
}

// parseRatings validates the submitted ratings map and converts it to the
// typed rating set. Every theme must be present with a full set of in-range
// values.
func parseRatings(in map[string][]int) (types.RatingSet, error) {
	out := make(types.RatingSet, len(types.Themes))

	for key, vals := range in {
		theme := types.Theme(key)
		if _, ok := types.Questions[theme]; !ok {
			return nil, &ErrValidation{Field: "ratings", Message: fmt.Sprintf("unknown theme: %s", key)}
		}
		if len(vals) != types.QuestionsPerTheme {
			return nil, &ErrValidation{
				Field:   "ratings",
				Message: fmt.Sprintf("theme %s needs %d values, got %d", key, types.QuestionsPerTheme, len(vals)),
			}
		}
		for _, v := range vals {
			if v < 0 || v > types.RatingMax {
				return nil, &ErrValidation{
					Field:   "ratings",
					Message: fmt.Sprintf("theme %s value %d out of range [0, %d]", key, v, types.RatingMax),
				}
			}
		}
		out[theme] = append([]int(nil), vals...)
	}

	for _, theme := range types.Themes {
		if _, ok := out[theme]; !ok {
			return nil, &ErrValidation{Field: "ratings", Message: fmt.Sprintf("missing theme: %s", theme)}
		}
	}

	return out, nil
}
