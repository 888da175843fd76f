package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/picture-match/internal/matching"
	"github.com/jonathan/picture-match/internal/session"
	"github.com/jonathan/picture-match/internal/types"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

func logError(err error) {
	log.Printf("[server] %v", err)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListPortals lists all portals
func (s *Server) handleListPortals(w http.ResponseWriter, r *http.Request) {
	portals, err := s.store.ListPortals(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if portals == nil {
		portals = []types.Portal{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"portals": portals, "total": len(portals)})
}

// handleGetPortal returns one portal
func (s *Server) handleGetPortal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	portal, err := s.store.GetPortal(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if portal == nil {
		s.writeError(w, &session.NotFoundError{Kind: "portal", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, portal)
}

// handleListItems lists the item pool
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if items == nil {
		items = []types.Item{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// handleSession generates a new session for a portal
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &types.GenerateRequest{
		PortalID: r.PathValue("id"),
		Device:   q.Get("device"),
		Mode:     q.Get("mode"),
		Variant:  q.Get("variant"),
		Seed:     s.seed,
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		req.Seed = seed
	}

	res, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, res.Session)
}

// handleCheck reports whether an item code may occupy a slot
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req types.CheckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, Check(&req))
}

// Check evaluates a placement check with the shared matching rules.
func Check(req *types.CheckRequest) types.CheckResponse {
	item := types.Item{Code: req.ItemCode}
	slot := types.Slot{RequiredCodes: req.RequiredCodes, Strict: req.Strict}
	return types.CheckResponse{
		Matches: matching.Fits(item, slot),
		Exact:   matching.Match(req.ItemCode, req.RequiredCodes, req.Strict).Kind == matching.Exact,
		Joker:   item.IsJoker(),
	}
}
