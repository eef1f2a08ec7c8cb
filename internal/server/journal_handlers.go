package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/user/ba-career-quest/internal/journal"
	"go.uber.org/zap"
)

// statusAll lists entries in every status
const statusAll = "all"

// filterFromQuery reads a journal filter from status, category, subcategory,
// author, tag and q query parameters. Without a status only published
// entries are listed.
func filterFromQuery(r *http.Request) journal.Filter {
	query := r.URL.Query()

	status := journal.StatusPublished
	if query.Has("status") {
		status = journal.Status(query.Get("status"))
		if status == statusAll {
			status = ""
		}
	}

	return journal.Filter{
		Status:      status,
		Category:    query.Get("category"),
		Subcategory: query.Get("subcategory"),
		AuthorType:  journal.AuthorType(query.Get("author")),
		Tags:        query["tag"],
		SearchQuery: query.Get("q"),
	}
}

func (s *Server) handleJournalList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.journal.List(filterFromQuery(r)))
}

func (s *Server) handleJournalCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.journal.Categories())
}

func (s *Server) handleJournalArticle(w http.ResponseWriter, r *http.Request) {
	view, err := s.journal.Article(chi.URLParam(r, "id"))
	if err != nil {
		s.writeJournalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleJournalCreate(w http.ResponseWriter, r *http.Request) {
	var draft journal.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if draft.AuthorName == "" {
		if c := s.game.State().Character; c != nil {
			draft.AuthorName = c.Name
			draft.AuthorSprite = c.Sprite
		}
	}

	entry, err := s.journal.CreateDraft(draft)
	if err != nil {
		s.writeJournalError(w, err)
		return
	}

	s.logger.Info("Journal draft created",
		zap.String("entry_id", entry.ID),
		zap.String("category", entry.Category))
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleJournalPublish(w http.ResponseWriter, r *http.Request) {
	entry, err := s.journal.Publish(chi.URLParam(r, "id"))
	if err != nil {
		s.writeJournalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleJournalArchive(w http.ResponseWriter, r *http.Request) {
	entry, err := s.journal.Archive(chi.URLParam(r, "id"))
	if err != nil {
		s.writeJournalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleJournalRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status journal.Completion `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	entry, err := s.journal.MarkRead(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.writeJournalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) writeJournalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, journal.ErrEntryNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, journal.ErrInvalidTransition):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, journal.ErrInvalidDraft), errors.Is(err, journal.ErrUnknownCategory):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("Journal operation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Journal operation failed")
	}
}
