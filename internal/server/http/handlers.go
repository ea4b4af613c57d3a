package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/arolabs/aronotes/internal/common"
	"github.com/arolabs/aronotes/internal/server/proxy"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeText(w, http.StatusBadRequest, "User already registered")
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "name, email and password are required")
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err.Error())
			writeText(w, http.StatusInternalServerError, "Error registering user")
		}
		return
	}

	writeText(w, http.StatusCreated, "User registered successfully")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeText(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeText(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	notes, err := s.notes.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "listing notes failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "error fetching notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := s.notes.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "note must have a title or content")
			return
		}
		s.logger.Error(r.Context(), "creating note failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "error adding note")
		return
	}

	writeText(w, http.StatusCreated, "Note added")
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteID"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.notes.Update(r.Context(), userID, noteID, req.Title, req.Content); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "note not found")
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "note must have a title or content")
		default:
			s.logger.Error(r.Context(), "updating note failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "error updating note")
		}
		return
	}

	writeText(w, http.StatusOK, "Note updated")
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteID"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := s.notes.Delete(r.Context(), userID, noteID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}
		s.logger.Error(r.Context(), "deleting note failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "error deleting note")
		return
	}

	writeText(w, http.StatusOK, "Note deleted")
}

func (s *Server) handleDrugLabel(w http.ResponseWriter, r *http.Request) {
	drugName := r.URL.Query().Get("drugName")
	if drugName == "" {
		writeError(w, http.StatusBadRequest, "drugName is required")
		return
	}

	label, err := s.drugs.FetchLabel(r.Context(), drugName)
	if err != nil {
		if errors.Is(err, proxy.ErrNoResults) {
			writeError(w, http.StatusNotFound, "no label found for "+drugName)
			return
		}
		s.logger.Error(r.Context(), "FDA lookup failed", "drug", drugName, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to fetch FDA data")
		return
	}

	writeJSON(w, http.StatusOK, label)
}

func (s *Server) handleResearchArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = "medicine"
	}
	maxResults, _ := strconv.Atoi(r.URL.Query().Get("maxResults"))

	articles, err := s.research.FetchArticles(r.Context(), query, maxResults)
	if err != nil {
		if errors.Is(err, proxy.ErrNoResults) {
			writeError(w, http.StatusNotFound, "no articles found matching your criteria")
			return
		}
		s.logger.Error(r.Context(), "PubMed lookup failed", "query", query, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to fetch research articles")
		return
	}

	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleHealthAdvice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"advice": s.advice.Next()})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "OK")
}
