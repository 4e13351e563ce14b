package cli

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitalvas/docmount/app"
)

// Item is a stored item of the demo API.
type Item struct {
	ID        string    `json:"id" openapi:"readOnly,format=uuid"`
	Name      string    `json:"name" openapi:"description=Display name,example=widget"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at" openapi:"readOnly"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name string   `json:"name" openapi:"description=Display name,example=widget"`
	Tags []string `json:"tags,omitempty"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

type itemStore struct {
	mu    sync.RWMutex
	items map[string]Item
}

func newItemStore() *itemStore {
	return &itemStore{items: make(map[string]Item)}
}

func (s *itemStore) list() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt) ||
			(items[i].CreatedAt.Equal(items[j].CreatedAt) && items[i].ID < items[j].ID)
	})
	return items
}

func (s *itemStore) get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

func (s *itemStore) create(req CreateItemRequest) Item {
	item := Item{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.items[item.ID] = item
	s.mu.Unlock()

	return item
}

func (s *itemStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func registerItems(a *app.App, store *itemStore) {
	a.Handle(http.MethodGet, "/items", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.list())
	}).
		OperationID("listItems").
		Summary("List items").
		Tags("items").
		Response(http.StatusOK, []Item{})

	a.Handle(http.MethodPost, "/items", func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "name is required"})
			return
		}
		writeJSON(w, http.StatusCreated, store.create(req))
	}).
		OperationID("createItem").
		Summary("Create item").
		Tags("items").
		Request(CreateItemRequest{}).
		Response(http.StatusCreated, Item{}).
		Response(http.StatusBadRequest, ErrorResponse{}).
		Response(http.StatusUnprocessableEntity, ErrorResponse{})

	a.Handle(http.MethodGet, "/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		item, ok := store.get(chi.URLParam(r, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "item not found"})
			return
		}
		writeJSON(w, http.StatusOK, item)
	}).
		OperationID("getItem").
		Summary("Get item").
		Tags("items").
		Response(http.StatusOK, Item{}).
		Response(http.StatusNotFound, ErrorResponse{})

	a.Handle(http.MethodDelete, "/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !store.delete(chi.URLParam(r, "id")) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "item not found"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}).
		OperationID("deleteItem").
		Summary("Delete item").
		Tags("items").
		Response(http.StatusNoContent, nil).
		Response(http.StatusNotFound, ErrorResponse{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
