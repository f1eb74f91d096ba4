package site

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teamsync/internal/carousel"
	"teamsync/internal/pricing"
	"teamsync/views/models"
	"teamsync/views/pages"
)

// FeaturedCount is how many activities the landing page teases.
const FeaturedCount = 3

// FeaturedFunc returns up to n activities ready for rendering.
type FeaturedFunc func(n int) []models.ActivityView

type Handler struct {
	content  *Content
	featured FeaturedFunc
	log      *zap.Logger
}

func NewHandler(content *Content, featured FeaturedFunc, log *zap.Logger) *Handler {
	return &Handler{content: content, featured: featured, log: log}
}

// Register mounts the landing page, its fragments and the pricing API.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.HomePage).Methods(http.MethodGet)
	r.HandleFunc("/fragments/header", h.HeaderFragment).Methods(http.MethodGet)
	r.HandleFunc("/fragments/pricing", h.PricingFragment).Methods(http.MethodGet)
	r.HandleFunc("/fragments/testimonials", h.TestimonialsFragment).Methods(http.MethodGet)
	r.HandleFunc("/api/pricing", h.GetPricing).Methods(http.MethodGet)
}

// NotFound renders the 404 page with the site chrome.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pages.NotFoundPage(h.content.HeaderView(r)))
}

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.HomePage(pages.HomeData{
		Header:   h.content.HeaderView(r),
		Hero:     h.content.heroView(),
		Featured: h.featured(FeaturedCount),
		Pricing:  h.content.PricingView(pricing.DefaultPeriod),
		Carousel: h.content.CarouselView(0),
	}))
}

// HeaderFragment handles GET /fragments/header (HTMX partial)
func (h *Handler) HeaderFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := q.Get("path")
	if path == "" {
		path = "/"
	}
	open, _ := strconv.ParseBool(q.Get("open"))
	// window.scrollY is fractional on zoomed and high-DPI screens.
	scroll, _ := strconv.ParseFloat(q.Get("scroll"), 64)

	h.render(w, r, http.StatusOK, pages.HeaderFragment(h.content.Header(path, open, scroll)))
}

// PricingFragment handles GET /fragments/pricing (HTMX partial)
func (h *Handler) PricingFragment(w http.ResponseWriter, r *http.Request) {
	period, err := pricing.ParsePeriod(r.URL.Query().Get("billing"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.render(w, r, http.StatusOK, pages.Pricing(h.content.PricingView(period)))
}

// TestimonialsFragment handles GET /fragments/testimonials (HTMX partial).
// goto jumps directly; otherwise dir moves one step from index.
func (h *Handler) TestimonialsFragment(w http.ResponseWriter, r *http.Request) {
	index, err := h.carouselIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.render(w, r, http.StatusOK, pages.Testimonials(h.content.CarouselView(index)))
}

func (h *Handler) carouselIndex(r *http.Request) (int, error) {
	q := r.URL.Query()
	n := len(h.content.Testimonials)

	if g := q.Get("goto"); g != "" {
		i, err := strconv.Atoi(g)
		if err != nil {
			return 0, err
		}
		c, err := carousel.New(n)
		if err != nil {
			return 0, err
		}
		if err := c.GoTo(i); err != nil {
			return 0, err
		}
		return c.Index(), nil
	}

	index := 0
	if s := q.Get("index"); s != "" {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		index = i
	}
	if s := q.Get("dir"); s != "" {
		dir, err := carousel.ParseDirection(s)
		if err != nil {
			return 0, err
		}
		return carousel.Cycle(index, dir, n), nil
	}
	return carousel.Normalize(index, n), nil
}

// GetPricing handles GET /api/pricing
func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	period, err := pricing.ParsePeriod(r.URL.Query().Get("billing"))
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.jsonResponse(w, pricing.QuotePlans(h.content.Plans, period), http.StatusOK)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, map[string]string{"error": message}, status)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
