// Package web is the HTTP consumer of the scan engine: a single-page UI and
// a JSON API. It performs request validation and rendering only; all
// concurrency lives in the engine.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"portly/internal/config"
	"portly/internal/engine"
	"portly/internal/portspec"
	"portly/models"
)

type Handler struct {
	engine *engine.Engine
	cfg    *config.Config
	logger *log.Logger
	page   *template.Template
}

func NewHandler(eng *engine.Engine, cfg *config.Config, logger *log.Logger) *Handler {
	return &Handler{
		engine: eng,
		cfg:    cfg,
		logger: logger,
		page:   template.Must(template.New("index").Parse(indexPage)),
	}
}

type scanRequest struct {
	Target  string  `json:"target"`
	Ports   string  `json:"ports"`
	Timeout float64 `json:"timeout"` // seconds
	Workers int     `json:"workers"`
}

type scanResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	*models.ScanSummary
}

// Index serves the embedded scan page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		DefaultPorts   string
		TimeoutSeconds float64
		Workers        int
	}{
		DefaultPorts:   h.cfg.DefaultPorts,
		TimeoutSeconds: h.cfg.ScanTimeout.Seconds(),
		Workers:        h.cfg.ScanWorkers,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Printf("index template: %v", err)
	}
}

// APIScan runs one synchronous scan and returns the summary.
func (h *Handler) APIScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	target := strings.TrimSpace(req.Target)
	if target == "" {
		h.writeError(w, http.StatusBadRequest, "target hostname or IP is required")
		return
	}

	spec := strings.TrimSpace(req.Ports)
	if spec == "" {
		spec = h.cfg.DefaultPorts
	}
	ports, err := portspec.Parse(spec)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid port specification: %v", err))
		return
	}

	timeout := h.cfg.ScanTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout * float64(time.Second))
	}
	workers := h.cfg.ScanWorkers
	if req.Workers > 0 {
		workers = req.Workers
	}
	if workers > h.cfg.MaxWorkers {
		workers = h.cfg.MaxWorkers
	}

	sum, err := h.engine.Scan(models.ScanTarget{
		Host:    target,
		Spec:    spec,
		Ports:   ports,
		Timeout: timeout,
		Workers: workers,
	})
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, scanResponse{Success: true, ScanSummary: sum})
}

// APIHealth is a liveness probe, unrelated to scanning.
func (h *Handler) APIHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, scanResponse{Success: false, Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Printf("write response: %v", err)
	}
}
