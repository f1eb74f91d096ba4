package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teamsync/views/models"
	"teamsync/views/pages"
)

// HeaderFunc builds the shared header state for a request.
type HeaderFunc func(r *http.Request) models.HeaderView

type Handler struct {
	svc    *Service
	header HeaderFunc
	log    *zap.Logger
}

func NewHandler(svc *Service, header HeaderFunc, log *zap.Logger) *Handler {
	return &Handler{svc: svc, header: header, log: log}
}

// Register mounts the catalog routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/activities", h.ListActivities).Methods(http.MethodGet)
	r.HandleFunc("/api/activities/{id}", h.GetActivity).Methods(http.MethodGet)
	r.HandleFunc("/api/events", h.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/filters", h.ListFilters).Methods(http.MethodGet)

	r.HandleFunc("/activities", h.ActivitiesPage).Methods(http.MethodGet)
	r.HandleFunc("/activities/{id}", h.ActivityPage).Methods(http.MethodGet)
	r.HandleFunc("/events", h.EventsPage).Methods(http.MethodGet)
	r.HandleFunc("/fragments/activities", h.ActivitiesFragment).Methods(http.MethodGet)
	r.HandleFunc("/fragments/events", h.EventsFragment).Methods(http.MethodGet)
}

// ActivityCriteria reads category, difficulty and q from a query string.
func ActivityCriteria(q url.Values) Criteria {
	return Criteria{
		Category:   orAll(q.Get("category")),
		Difficulty: orAll(q.Get("difficulty")),
		Search:     q.Get("q"),
	}
}

// EventCriteria reads type and q from a query string.
func EventCriteria(q url.Values) Criteria {
	return Criteria{
		Category:   orAll(q.Get("type")),
		Difficulty: All,
		Search:     q.Get("q"),
	}
}

func orAll(s string) string {
	if s == "" {
		return All
	}
	return s
}

// --- REST API Handlers ---

// ListActivities handles GET /api/activities
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Activities(ActivityCriteria(r.URL.Query())), http.StatusOK)
}

// GetActivity handles GET /api/activities/{id}
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.jsonError(w, "invalid activity ID", http.StatusBadRequest)
		return
	}

	activity, err := h.svc.Activity(id)
	if errors.Is(err, ErrNotFound) {
		h.jsonError(w, "activity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get activity", zap.Int("id", id), zap.Error(err))
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, activity, http.StatusOK)
}

// ListEvents handles GET /api/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Events(EventCriteria(r.URL.Query())), http.StatusOK)
}

// ListFilters handles GET /api/filters
func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, Options(), http.StatusOK)
}

// --- Helper methods ---

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

// --- View model converters ---

func (h *Handler) activitiesToViews(items []Activity) []models.ActivityView {
	views := make([]models.ActivityView, len(items))
	for i, a := range items {
		views[i] = h.activityToView(a)
	}
	return views
}

func (h *Handler) activityToView(a Activity) models.ActivityView {
	return models.ActivityView{
		ID:              a.ID,
		Title:           a.Title,
		DescriptionHTML: h.svc.RenderMarkdown(a.Description),
		Image:           a.Image,
		Category:        a.Category,
		Duration:        a.Duration,
		Participants:    a.Participants,
		Tags:            a.Tags,
		Difficulty:      a.Difficulty,
	}
}

// FeaturedViews returns the first n activities ready for rendering.
func (h *Handler) FeaturedViews(n int) []models.ActivityView {
	return h.activitiesToViews(h.svc.Featured(n))
}

func (h *Handler) eventsToViews(items []Event) []models.EventView {
	views := make([]models.EventView, len(items))
	for i, e := range items {
		views[i] = models.EventView{
			ID:              e.ID,
			Title:           e.Title,
			Date:            e.Date,
			Time:            e.Time,
			Type:            e.Type,
			Image:           e.Image,
			DescriptionHTML: h.svc.RenderMarkdown(e.Description),
			Capacity:        e.Capacity,
			Price:           e.Price,
		}
	}
	return views
}

func activityFilterView(c Criteria) models.ActivityFilterView {
	opts := Options()
	return models.ActivityFilterView{
		Category:   c.Category,
		Difficulty: c.Difficulty,
		Search:     c.Search,
		Groups: []models.FilterGroupView{
			{Label: "Category", Param: "category", Options: optionViews(opts.Categories, All), Selected: c.Category},
			{Label: "Difficulty", Param: "difficulty", Options: optionViews(opts.Difficulties, All), Selected: c.Difficulty},
		},
	}
}

func eventFilterView(c Criteria) models.EventFilterView {
	return models.EventFilterView{
		Type:   c.Category,
		Search: c.Search,
		Group: models.FilterGroupView{
			Param:    "type",
			Options:  optionViews(Options().EventTypes, "All Events"),
			Selected: c.Category,
		},
	}
}

func optionViews(values []string, allLabel string) []models.FilterOptionView {
	views := make([]models.FilterOptionView, len(values))
	for i, v := range values {
		label := v
		if v == All {
			label = allLabel
		}
		views[i] = models.FilterOptionView{Value: v, Label: label}
	}
	return views
}

// --- HTMX Web Handlers ---

// ActivitiesPage handles GET /activities
func (h *Handler) ActivitiesPage(w http.ResponseWriter, r *http.Request) {
	c := ActivityCriteria(r.URL.Query())
	items := h.activitiesToViews(h.svc.Activities(c))
	h.render(w, r, http.StatusOK, pages.ActivitiesPage(h.header(r), activityFilterView(c), items))
}

// ActivityPage handles GET /activities/{id}
func (h *Handler) ActivityPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render(w, r, http.StatusNotFound, pages.NotFoundPage(h.header(r)))
		return
	}

	activity, err := h.svc.Activity(id)
	if errors.Is(err, ErrNotFound) {
		h.render(w, r, http.StatusNotFound, pages.NotFoundPage(h.header(r)))
		return
	}
	if err != nil {
		h.log.Error("failed to get activity", zap.Int("id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, pages.ActivityDetailPage(h.header(r), h.activityToView(activity)))
}

// EventsPage handles GET /events
func (h *Handler) EventsPage(w http.ResponseWriter, r *http.Request) {
	c := EventCriteria(r.URL.Query())
	items := h.eventsToViews(h.svc.Events(c))
	h.render(w, r, http.StatusOK, pages.EventsPage(h.header(r), eventFilterView(c), items))
}

// ActivitiesFragment handles GET /fragments/activities (HTMX partial)
func (h *Handler) ActivitiesFragment(w http.ResponseWriter, r *http.Request) {
	c := ActivityCriteria(r.URL.Query())
	items := h.activitiesToViews(h.svc.Activities(c))
	w.Header().Set("HX-Replace-Url", pageURL("/activities", r.URL.Query()))
	h.render(w, r, http.StatusOK, pages.ActivityResults(activityFilterView(c), items))
}

// EventsFragment handles GET /fragments/events (HTMX partial)
func (h *Handler) EventsFragment(w http.ResponseWriter, r *http.Request) {
	c := EventCriteria(r.URL.Query())
	items := h.eventsToViews(h.svc.Events(c))
	w.Header().Set("HX-Replace-Url", pageURL("/events", r.URL.Query()))
	h.render(w, r, http.StatusOK, pages.EventResults(eventFilterView(c), items))
}

func pageURL(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
