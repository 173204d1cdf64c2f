package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hogardeco/hogar/internal/domain"
	"github.com/hogardeco/hogar/internal/usecase"
)

const sessionCookie = "cart_session"

type Server struct {
	mux     *http.ServeMux
	catalog *usecase.CatalogUC
	carts   *usecase.CartUC
	secret  []byte
}

func New(catalog *usecase.CatalogUC, carts *usecase.CartUC) http.Handler {
	s := &Server{
		mux:     http.NewServeMux(),
		catalog: catalog,
		carts:   carts,
		secret:  secretKey(),
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/products", s.handleProducts)
	s.mux.HandleFunc("/api/products/", s.handleProduct)
	s.mux.HandleFunc("/api/categories", s.handleCategories)
	s.mux.HandleFunc("/api/price-ranges", s.handlePriceRanges)
	s.mux.HandleFunc("/api/designers", s.handleDesigners)
	s.mux.HandleFunc("/api/catalog/export", s.handleCatalogExport)

	s.mux.HandleFunc("/api/cart", s.handleCart)
	s.mux.HandleFunc("/api/cart/items", s.handleCartAdd)
	s.mux.HandleFunc("/api/cart/update", s.handleCartUpdate)
	s.mux.HandleFunc("/api/cart/remove", s.handleCartRemove)
	s.mux.HandleFunc("/api/cart/clear", s.cartActionHandler(domain.ActionClearCart))
	s.mux.HandleFunc("/api/cart/toggle", s.cartActionHandler(domain.ActionToggleCart))
	s.mux.HandleFunc("/api/cart/close", s.cartActionHandler(domain.ActionCloseCart))
}

// --- catalog ---

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	f, err := filtersFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	list, err := s.catalog.Search(r.Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("search products")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	code := strings.TrimPrefix(r.URL.Path, "/api/products/")
	p, err := s.catalog.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Error().Err(err).Str("code", code).Msg("get product")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "categories failed"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePriceRanges(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListPriceRanges(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "price ranges failed"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDesigners(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListDesigners(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "designers failed"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// filtersFromQuery maps URL parameters onto domain.SearchFilters. A present
// but empty category parameter means "all deselected" and keeps the list
// non-nil, which the engine treats as match-nothing.
func filtersFromQuery(r *http.Request) (domain.SearchFilters, error) {
	q := r.URL.Query()
	f := domain.SearchFilters{Query: q.Get("q")}

	if raw, ok := q["category"]; ok {
		cats := []string{}
		for _, c := range raw {
			if c = strings.TrimSpace(c); c != "" {
				cats = append(cats, c)
			}
		}
		f.Categories = cats
	}

	for _, raw := range q["price"] {
		rng, err := parsePriceRange(raw)
		if err != nil {
			return domain.SearchFilters{}, err
		}
		f.PriceRanges = append(f.PriceRanges, rng)
	}

	switch q.Get("sort") {
	case "", "default":
		f.Sort = domain.SortNone
	case "price_asc":
		f.Sort = domain.SortPriceAsc
	case "price_desc":
		f.Sort = domain.SortPriceDesc
	case "name":
		f.Sort = domain.SortName
	default:
		return domain.SearchFilters{}, errors.New("unknown sort key")
	}
	return f, nil
}

// parsePriceRange reads "min-max"; an empty max ("200-") means open-ended.
func parsePriceRange(raw string) (domain.PriceRange, error) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return domain.PriceRange{}, errors.New("price range must be min-max")
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.PriceRange{}, errors.New("bad price range lower bound")
	}
	max := math.Inf(1)
	if parts[1] != "" {
		max, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return domain.PriceRange{}, errors.New("bad price range upper bound")
		}
	}
	return domain.PriceRange{Min: min, Max: max}, nil
}

// --- cart ---

type cartResponse struct {
	State     domain.CartState  `json:"state"`
	Totals    domain.CartTotals `json:"totals"`
	ItemCount int               `json:"itemCount"`
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
		id := s.ensureSession(w, r)
		state, err := s.carts.Get(id)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, cartResponse{
			State:     state,
			Totals:    domain.Totals(state),
			ItemCount: domain.ItemCount(state),
		})
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Code) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code required"})
		return
	}
	p, err := s.catalog.GetByCode(r.Context(), body.Code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Error().Err(err).Str("code", body.Code).Msg("cart add lookup")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		return
	}
	id := s.ensureSession(w, r)
	s.dispatch(w, id, domain.CartAction{Type: domain.ActionAddItem, Product: *p})
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Code) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code required"})
		return
	}
	id := s.ensureSession(w, r)

	// The reducer takes quantities verbatim; the stock cap lives here, at
	// the quantity-selector boundary.
	qty := body.Quantity
	if state, err := s.carts.Get(id); err == nil {
		for _, it := range state.Items {
			if it.Product.Code == body.Code && qty > it.Product.Stock {
				qty = it.Product.Stock
			}
		}
	}
	s.dispatch(w, id, domain.CartAction{Type: domain.ActionUpdateQuantity, ProductCode: body.Code, Quantity: qty})
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Code) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code required"})
		return
	}
	id := s.ensureSession(w, r)
	s.dispatch(w, id, domain.CartAction{Type: domain.ActionRemoveItem, ProductCode: body.Code})
}

func (s *Server) cartActionHandler(t domain.CartActionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		id := s.ensureSession(w, r)
		s.dispatch(w, id, domain.CartAction{Type: t})
	}
}

func (s *Server) dispatch(w http.ResponseWriter, sessionID string, a domain.CartAction) {
	state, err := s.carts.Dispatch(sessionID, a)
	if err != nil {
		log.Error().Err(err).Str("action", string(a.Type)).Msg("cart dispatch")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		State:     state,
		Totals:    domain.Totals(state),
		ItemCount: domain.ItemCount(state),
	})
}

// --- session cookie ---

func secretKey() []byte {
	k := os.Getenv("SESSION_KEY")
	if k == "" {
		k = "dev-insecure"
	}
	return []byte(k)
}

// ensureSession returns the caller's cart session, minting one (and setting
// the signed cookie) when the cookie is absent, tampered with, or points at
// a session this process no longer knows.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if id := s.readSession(r); id != "" && s.carts.Has(id) {
		return id
	}
	id := s.carts.NewSession()
	s.writeSession(w, id)
	return id
}

func (s *Server) readSession(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return ""
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return ""
	}
	id, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	h := hmac.New(sha256.New, s.secret)
	h.Write(id)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return ""
	}
	return string(id)
}

func (s *Server) writeSession(w http.ResponseWriter, id string) {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(id))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString([]byte(id))
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: val, Path: "/", HttpOnly: true})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
