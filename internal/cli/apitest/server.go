// Package apitest runs an in-memory networking service for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/marmos91/netctl/pkg/resource"
)

// Credentials accepted by the login endpoint.
const (
	Username = "admin"
	Password = "secret"
)

// Request is a request received by the server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
	Token  string
}

// Server is a fake networking service with in-memory collections.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	networks    map[string][]map[string]any
	tenantID    string
	requests    []Request
	failures    map[string]int
	accessToken string
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		collections: make(map[string][]map[string]any),
		networks:    make(map[string][]map[string]any),
		failures:    make(map[string]int),
		tenantID:    uuid.NewString(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Route(resource.APIPrefix, func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.Post("/auth/refresh", s.refresh)
		r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/settings/tenant", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"tenant": map[string]any{"tenant_id": s.TenantID()}})
		})
		r.Put("/hosts/{id}/bind_interface", s.hostInterface)
		r.Put("/hosts/{id}/unbind_interface", s.hostInterface)
		r.Get("/providernets/{id}/networks", s.providerNetNetworks)

		for _, kind := range resource.All {
			r.Get(kind.Path, s.list(kind))
			r.Post(kind.Path, s.create(kind))
			r.Get(kind.Path+"/{id}", s.show(kind))
			r.Put(kind.Path+"/{id}", s.update(kind))
			r.Delete(kind.Path+"/{id}", s.remove(kind))
		}
	})

	return r
}

// record stores every request and applies forced failures.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(data))

		req := Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Token:  strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
		}
		if len(data) > 0 {
			_ = json.Unmarshal(data, &req.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		status, fail := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if fail {
			writeError(w, status, "ServerError", fmt.Sprintf("forced failure for %s %s", r.Method, r.URL.Path))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Seed adds obj to the collection of kind and returns its ID, generating
// one when obj has none.
func (s *Server) Seed(kind resource.Kind, obj map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := idKey(kind)
	id, _ := obj[key].(string)
	if id == "" {
		id = uuid.NewString()
	}

	stored := clone(obj)
	stored[key] = id
	s.collections[kind.Name] = append(s.collections[kind.Name], stored)
	return id
}

// SeedNetworks sets the networks reported for a provider network.
func (s *Server) SeedNetworks(providerNetID string, networks ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[providerNetID] = append(s.networks[providerNetID], networks...)
}

// TenantID returns the tenant reported for the caller.
func (s *Server) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenantID
}

// Objects returns a copy of the collection of kind.
func (s *Server) Objects(kind resource.Kind) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, 0, len(s.collections[kind.Name]))
	for _, obj := range s.collections[kind.Name] {
		out = append(out, clone(obj))
	}
	return out
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request with the given method.
func (s *Server) LastRequest(method string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Method == method {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

// CountRequests returns how many requests matched method and path.
func (s *Server) CountRequests(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// FailWith makes every request for method and path fail with status.
func (s *Server) FailWith(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// AccessToken returns the token issued by the last login or refresh.
func (s *Server) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"code": "BAD_REQUEST", "message": "invalid request body"})
		return
	}
	if req.Username != Username || req.Password != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"code": "UNAUTHORIZED", "message": "invalid credentials"})
		return
	}
	s.issueTokens(w)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	s.issueTokens(w)
}

func (s *Server) issueTokens(w http.ResponseWriter) {
	s.mu.Lock()
	s.accessToken = "access-" + uuid.NewString()
	token := s.accessToken
	tenant := s.tenantID
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  token,
		"refresh_token": "refresh-" + uuid.NewString(),
		"token_type":    "Bearer",
		"expires_in":    3600,
		"tenant_id":     tenant,
	})
}

func (s *Server) hostInterface(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.find(resource.Host, id); !ok {
		notFound(w, resource.Host, id)
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["interface"] == nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "missing interface")
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) providerNetNetworks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.find(resource.ProviderNet, id); !ok {
		notFound(w, resource.ProviderNet, id)
		return
	}

	s.mu.Lock()
	items := make([]map[string]any, 0, len(s.networks[id]))
	for _, n := range s.networks[id] {
		items = append(items, clone(n))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{resource.Network.Plural: query(items, r.URL.Query())})
}

func (s *Server) list(kind resource.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{kind.Plural: query(s.Objects(kind), r.URL.Query())})
	}
}

func (s *Server) show(kind resource.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		obj, ok := s.find(kind, id)
		if !ok {
			notFound(w, kind, id)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{kind.Name: project(obj, r.URL.Query()["fields"])})
	}
}

func (s *Server) create(kind resource.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attrs, ok := decodeEnvelope(w, r, kind)
		if !ok {
			return
		}
		id := s.Seed(kind, attrs)
		obj, _ := s.find(kind, id)
		writeJSON(w, http.StatusCreated, map[string]any{kind.Name: obj})
	}
}

func (s *Server) update(kind resource.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		attrs, ok := decodeEnvelope(w, r, kind)
		if !ok {
			return
		}

		s.mu.Lock()
		var updated map[string]any
		for _, obj := range s.collections[kind.Name] {
			if obj[idKey(kind)] == id {
				for k, v := range attrs {
					obj[k] = v
				}
				updated = clone(obj)
				break
			}
		}
		s.mu.Unlock()

		if updated == nil {
			if kind != resource.Setting {
				notFound(w, kind, id)
				return
			}
			attrs[idKey(kind)] = id
			s.Seed(kind, attrs)
			updated = attrs
		}
		writeJSON(w, http.StatusOK, map[string]any{kind.Name: updated})
	}
}

func (s *Server) remove(kind resource.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		items := s.collections[kind.Name]
		removed := false
		for i, obj := range items {
			if obj[idKey(kind)] == id {
				s.collections[kind.Name] = append(items[:i:i], items[i+1:]...)
				removed = true
				break
			}
		}
		s.mu.Unlock()

		if !removed {
			notFound(w, kind, id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) find(kind resource.Kind, id string) (map[string]any, bool) {
	for _, obj := range s.Objects(kind) {
		if obj[idKey(kind)] == id {
			return obj, true
		}
	}
	return nil, false
}

// idKey is the attribute identifying objects of kind. Settings are keyed
// by tenant.
func idKey(kind resource.Kind) string {
	if kind == resource.Setting {
		return "tenant_id"
	}
	return "id"
}

func decodeEnvelope(w http.ResponseWriter, r *http.Request, kind resource.Kind) (map[string]any, bool) {
	var body map[string]map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid request body")
		return nil, false
	}
	attrs, ok := body[kind.Name]
	if !ok {
		writeError(w, http.StatusBadRequest, "BadRequest", fmt.Sprintf("missing %q in request body", kind.Name))
		return nil, false
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, true
}

var reservedParams = map[string]bool{"fields": true, "sort_key": true, "sort_dir": true}

// query applies equality filters, sorting and field selection.
func query(items []map[string]any, q url.Values) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, obj := range items {
		if matches(obj, q) {
			out = append(out, obj)
		}
	}

	keys, dirs := q["sort_key"], q["sort_dir"]
	sort.SliceStable(out, func(i, j int) bool {
		for n, key := range keys {
			c := compare(out[i][key], out[j][key])
			if c == 0 {
				continue
			}
			if n < len(dirs) && dirs[n] == "desc" {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	for i, obj := range out {
		out[i] = project(obj, q["fields"])
	}
	return out
}

func matches(obj map[string]any, q url.Values) bool {
	for key, values := range q {
		if reservedParams[key] {
			continue
		}
		if !contains(values, fmt.Sprint(obj[key])) {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func compare(a, b any) int {
	af, aok := number(a)
	bf, bok := number(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func project(obj map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return obj
	}
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := obj[f]; ok {
			out[f] = v
		}
	}
	return out
}

func clone(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out
}

func notFound(w http.ResponseWriter, kind resource.Kind, id string) {
	writeError(w, http.StatusNotFound, "NotFound", fmt.Sprintf("%s %s could not be found", kind.Name, id))
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, map[string]any{
		"NeutronError": map[string]any{"type": errType, "message": message, "detail": ""},
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
