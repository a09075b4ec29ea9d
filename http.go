package peepsgo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	statusOK = []byte(`{"status":"OK"}`)
)

type accountsJSONResp struct {
	Accounts []Account `json:"accounts"`
}

type peepsJSONResp struct {
	Peeps []Peep `json:"peeps"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.Use(RequestLogger(log))
	mux.NotFound(HTTPNotFound)
	mux.Get("/health", hndlr.Health)
	mux.Route("/accounts", func(r chi.Router) {
		r.Get("/", hndlr.ListAccounts)
		r.Post("/", hndlr.CreateAccount)
		r.Delete("/", hndlr.DeleteAllAccounts)
		r.Route("/{acctID}", func(rr chi.Router) {
			rr.Get("/", hndlr.GetAccount)
			rr.Delete("/", hndlr.DeleteAccount)
			rr.Route("/peeps", func(rrr chi.Router) {
				rrr.Get("/", hndlr.ListPeeps)
				rrr.Post("/", hndlr.CreatePeep)
				rrr.Delete("/", hndlr.DeleteAllPeeps)
				rrr.Get("/export", hndlr.ExportPeeps)
				rrr.Get("/{peepID}", hndlr.GetPeep)
				rrr.Put("/{peepID}", hndlr.UpdatePeep)
				rrr.Delete("/{peepID}", hndlr.DeletePeep)
			})
		})
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accts, err := h.Svc.ListAccounts(r.Context())
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accountsJSONResp{Accounts: accts})
}

func (h *httpHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.Svc.CreateAccount(r.Context())
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, acct)
}

func (h *httpHandler) DeleteAllAccounts(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAllAccounts(r.Context()); err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *httpHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.Svc.GetAccount(r.Context(), chi.URLParam(r, "acctID"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (h *httpHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAccount(r.Context(), chi.URLParam(r, "acctID")); err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *httpHandler) ListPeeps(w http.ResponseWriter, r *http.Request) {
	peeps, err := h.Svc.ListPeeps(r.Context(), chi.URLParam(r, "acctID"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	if peeps == nil {
		peeps = []Peep{}
	}
	writeJSON(w, http.StatusOK, peepsJSONResp{Peeps: peeps})
}

func (h *httpHandler) GetPeep(w http.ResponseWriter, r *http.Request) {
	peep, err := h.Svc.GetPeep(r.Context(), chi.URLParam(r, "acctID"), chi.URLParam(r, "peepID"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, peep)
}

func (h *httpHandler) CreatePeep(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttrs(r)
	if err != nil {
		h.Log.Err(err).Str("method", "createPeep").Msg("error decoding request body")
		WriteHTTPError(w, err)
		return
	}
	peep, err := h.Svc.CreatePeep(r.Context(), chi.URLParam(r, "acctID"), attrs)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, peep)
}

func (h *httpHandler) UpdatePeep(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttrs(r)
	if err != nil {
		h.Log.Err(err).Str("method", "updatePeep").Msg("error decoding request body")
		WriteHTTPError(w, err)
		return
	}
	peep, err := h.Svc.UpdatePeep(r.Context(), chi.URLParam(r, "acctID"), chi.URLParam(r, "peepID"), attrs)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, peep)
}

func (h *httpHandler) DeletePeep(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.DeletePeep(r.Context(), chi.URLParam(r, "acctID"), chi.URLParam(r, "peepID"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *httpHandler) DeleteAllPeeps(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAllPeeps(r.Context(), chi.URLParam(r, "acctID")); err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *httpHandler) ExportPeeps(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	if err := h.Svc.ExportPeeps(r.Context(), w, chi.URLParam(r, "acctID")); err != nil {
		w.Header().Del("Content-Type")
		WriteHTTPError(w, err)
	}
}

// decodeAttrs reads the open attribute payload of a peep create/update.
// An empty body means no attributes; anything that is not a JSON object
// is a bad request.
func decodeAttrs(r *http.Request) (map[string]interface{}, error) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		return nil, ErrInternalServer
	}
	if len(buf) == 0 {
		return map[string]interface{}{}, nil
	}
	var attrs map[string]interface{}
	if err = json.Unmarshal(buf, &attrs); err != nil {
		return nil, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON object"}}
	}
	return attrs, nil
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errnf := &ErrNotFound{}
	errbr := &ErrBadRequest{}
	if errors.As(err, errnf) {
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(errnf)
	} else if errors.As(err, errbr) {
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
		resp := map[string]string{
			"message": "server error",
		}
		ne = json.NewEncoder(w).Encode(resp)
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}

// RequestLogger tags every request with a generated id and logs its
// method, path, and duration.
func RequestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := uuid.NewString()
			next.ServeHTTP(w, r)
			logger.Info().
				Str("requestId", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request served")
		})
	}
}
