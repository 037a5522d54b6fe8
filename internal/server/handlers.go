package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/fengshui/internal/config"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/interaction"
	"github.com/matzehuels/fengshui/pkg/layout"
	"github.com/matzehuels/fengshui/pkg/render"
	"github.com/matzehuels/fengshui/pkg/session"
)

// maxBodyBytes bounds request bodies; every request is a handful of numbers.
const maxBodyBytes = 1 << 16

type createRequest struct {
	Count  *int    `json:"count" validate:"omitempty,min=0"`
	Seed   uint64  `json:"seed"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

type pressRequest struct {
	ItemID string  `json:"itemId" validate:"required,itemid"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "read page"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}

func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decode(r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}

	canvas := s.cfg.Canvas
	count := canvas.Count
	if req.Count != nil {
		count = *req.Count
	}
	if err := errors.ValidateCount(count, config.MaxCount); err != nil {
		s.writeError(w, r, err)
		return
	}
	bounds := canvas.Bounds()
	if req.Width != 0 || req.Height != 0 {
		bounds = furniture.Bounds{Width: req.Width, Height: req.Height}
		if err := validateBounds(bounds); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = canvas.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	l := layout.Generate(count, bounds, furniture.NewRand(seed), s.scorer)
	b := session.NewBoard(l, s.cfg.Server.SessionTTL.Duration)
	if err := s.store.Set(r.Context(), b); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "store board"))
		return
	}
	s.metrics.boardsCreated.Inc()
	s.logger.Debug("board created", "board", b.ID, "items", count, "seed", seed)

	writeJSON(w, http.StatusCreated, b.Snapshot())
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	b, ok := s.board(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, b.Snapshot())
}

func (s *Server) deleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "boardID")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "delete board"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) press(w http.ResponseWriter, r *http.Request) {
	var req pressRequest
	if err := decode(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	b, ok := s.board(w, r)
	if !ok {
		return
	}
	st := b.Update(func(d *interaction.Session) {
		d.Press(req.ItemID, furniture.Point{X: req.X, Y: req.Y})
	})
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decode(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	b, ok := s.board(w, r)
	if !ok {
		return
	}
	st := b.Update(func(d *interaction.Session) {
		d.Move(furniture.Point{X: req.X, Y: req.Y})
	})
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) release(w http.ResponseWriter, r *http.Request) {
	b, ok := s.board(w, r)
	if !ok {
		return
	}
	st := b.Update(func(d *interaction.Session) {
		d.Release()
	})
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) svg(w http.ResponseWriter, r *http.Request) {
	b, ok := s.board(w, r)
	if !ok {
		return
	}
	var out []byte
	b.Do(func(d *interaction.Session) {
		out = render.RenderSVG(d.Layout())
	})
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(out)
}

// board looks up the board named in the URL, writing a 404 when it is
// missing and a 410 when it has expired.
func (s *Server) board(w http.ResponseWriter, r *http.Request) (*session.Board, bool) {
	id := chi.URLParam(r, "boardID")
	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInternal, err, "load board")
		}
		s.writeError(w, r, err)
		return nil, false
	}
	if b == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeSessionNotFound, "board %q not found", id))
		return nil, false
	}
	return b, true
}

// decode reads a JSON body into v and checks its validate tags. With
// optional set an empty body is accepted and leaves v untouched.
func decode(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF && optional {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return validateRequest(v)
}

func validateBounds(b furniture.Bounds) error {
	if err := errors.ValidateSize("width", b.Width); err != nil {
		return err
	}
	return errors.ValidateSize("height", b.Height)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}
