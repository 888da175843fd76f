package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jonathan/picture-match/internal/matching"
	"github.com/jonathan/picture-match/internal/types"
)

// Play message and frame types.
const (
	msgGenerate = "generate"
	msgPlace    = "place"

	frameSession   = "session"
	framePlacement = "placement"
	frameComplete  = "complete"
	frameError     = "error"
)

const (
	playReadLimit = 1 << 16
	playIdle      = 5 * time.Minute
)

// playMessage is an inbound websocket message. A message without a type is a
// generate request.
type playMessage struct {
	Type string `json:"type"`
	types.GenerateRequest
	ItemID string `json:"itemId,omitempty"`
	CellID string `json:"cellId,omitempty"`
}

// playFrame is an outbound websocket message.
type playFrame struct {
	Type    string         `json:"type"`
	Session *types.Session `json:"session,omitempty"`
	ItemID  string         `json:"itemId,omitempty"`
	CellID  string         `json:"cellId,omitempty"`
	Correct *bool          `json:"correct,omitempty"`
	Filled  int            `json:"filled,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// round tracks the placements of the current session on one connection.
type round struct {
	session *types.Session
	cells   map[string]types.Slot
	items   map[string]types.Item
	copies  map[string]int    // item ID -> copies in the tray
	placed  map[string]int    // item ID -> copies placed
	filled  map[string]string // cell ID -> item ID
	// required holds the cells that must be filled to finish. Cells the
	// generator could not fill are left out.
	required map[string]bool
}

func newRound(s *types.Session) *round {
	r := &round{
		session:  s,
		cells:    make(map[string]types.Slot, len(s.Cells)),
		items:    make(map[string]types.Item, len(s.Items)),
		copies:   make(map[string]int, len(s.Items)),
		placed:   make(map[string]int, len(s.Items)),
		filled:   make(map[string]string, len(s.Cells)),
		required: make(map[string]bool, len(s.Cells)),
	}
	for _, c := range s.Cells {
		r.cells[c.ID] = c
		r.required[c.ID] = true
	}
	if s.Diagnostics != nil {
		for _, id := range s.Diagnostics.UnfilledCells {
			delete(r.required, id)
		}
	}
	for _, it := range s.Items {
		r.items[it.ID] = it
		r.copies[it.ID]++
	}
	return r
}

// place tries to put one copy of an item into a cell. A correct placement
// fills the cell; a wrong one leaves the round unchanged.
func (r *round) place(itemID, cellID string) playFrame {
	cell, ok := r.cells[cellID]
	if !ok {
		return playFrame{Type: frameError, Error: "unknown cell " + cellID}
	}
	item, ok := r.items[itemID]
	if !ok {
		return playFrame{Type: frameError, Error: "unknown item " + itemID}
	}
	if _, done := r.filled[cellID]; done {
		return playFrame{Type: frameError, Error: "cell already filled " + cellID}
	}
	if r.placed[itemID] >= r.copies[itemID] {
		return playFrame{Type: frameError, Error: "item already placed " + itemID}
	}

	correct := matching.Fits(item, cell)
	if correct {
		r.filled[cellID] = itemID
		r.placed[itemID]++
	}
	return playFrame{Type: framePlacement, ItemID: itemID, CellID: cellID, Correct: &correct, Filled: len(r.filled)}
}

// complete reports whether every required cell is filled.
func (r *round) complete() bool {
	for id := range r.required {
		if _, ok := r.filled[id]; !ok {
			return false
		}
	}
	return true
}

// handlePlay upgrades to a websocket and runs rounds until the client leaves.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	client := s.extractClientID(r)
	log.Printf("[ws] connected %s", client)
	defer log.Printf("[ws] disconnected %s", client)

	conn.SetReadLimit(playReadLimit)

	var current *round
	for {
		_ = conn.SetReadDeadline(time.Now().Add(playIdle))
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error from %s: %v", client, err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var frames []playFrame
		current, frames = s.handlePlayMessage(r, current, data)
		for _, f := range frames {
			if err := conn.WriteJSON(f); err != nil {
				log.Printf("[ws] write error to %s: %v", client, err)
				return
			}
		}
	}
}

// handlePlayMessage applies one inbound message and returns the new round
// and the frames to send.
func (s *Server) handlePlayMessage(r *http.Request, current *round, data []byte) (*round, []playFrame) {
	var msg playMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return current, []playFrame{{Type: frameError, Error: "invalid JSON: " + err.Error()}}
	}

	switch msg.Type {
	case "", msgGenerate:
		req := msg.GenerateRequest
		if req.Seed == 0 {
			req.Seed = s.seed
		}
		res, err := s.generator.Generate(r.Context(), &req)
		if err != nil {
			if HTTPStatus(err) >= http.StatusInternalServerError {
				logError(err)
				return current, []playFrame{{Type: frameError, Error: "internal error"}}
			}
			return current, []playFrame{{Type: frameError, Error: err.Error()}}
		}
		next := newRound(res.Session)
		return next, []playFrame{{Type: frameSession, Session: res.Session}}

	case msgPlace:
		if current == nil {
			return nil, []playFrame{{Type: frameError, Error: "no active session"}}
		}
		f := current.place(msg.ItemID, msg.CellID)
		frames := []playFrame{f}
		if f.Type == framePlacement && current.complete() {
			frames = append(frames, playFrame{Type: frameComplete, Filled: len(current.filled)})
		}
		return current, frames

	default:
		return current, []playFrame{{Type: frameError, Error: "unknown message type " + msg.Type}}
	}
}
