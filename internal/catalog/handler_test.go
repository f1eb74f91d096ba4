package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teamsync/views/models"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	header := func(r *http.Request) models.HeaderView {
		return models.HeaderView{Brand: "TeamSync Pro", Path: r.URL.Path}
	}
	h := NewHandler(newTestService(t), header, zap.NewNop())
	r := mux.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func parseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestActivityCriteria(t *testing.T) {
	q, _ := url.ParseQuery("category=Outdoor&q=Trust")
	assert.Equal(t, Criteria{Category: CategoryOutdoor, Difficulty: All, Search: "Trust"}, ActivityCriteria(q))

	assert.Equal(t, Criteria{Category: All, Difficulty: All}, ActivityCriteria(url.Values{}))

	q, _ = url.ParseQuery("type=In-Person")
	assert.Equal(t, Criteria{Category: EventInPerson, Difficulty: All}, EventCriteria(q))
}

func TestAPIListActivities(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/api/activities?difficulty=Easy")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []int{1, 3}, ids(got))

	rr = get(t, r, "/api/activities?category=Underwater")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAPIGetActivity(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/api/activities/3")
	require.Equal(t, http.StatusOK, rr.Code)
	var a Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &a))
	assert.Equal(t, "Culinary Team Building", a.Title)

	rr = get(t, r, "/api/activities/99")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"activity not found"}`, rr.Body.String())

	rr = get(t, r, "/api/activities/abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPIListEventsAndFilters(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/api/events?type=Outdoor")
	require.Equal(t, http.StatusOK, rr.Code)
	var events []Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].ID)

	rr = get(t, r, "/api/filters")
	require.Equal(t, http.StatusOK, rr.Code)
	var f Filters
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &f))
	assert.Equal(t, Options(), f)
}

func TestActivitiesPage(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/activities?category=Virtual")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc := parseHTML(t, rr)
	assert.Equal(t, "Activities | TeamSync Pro", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#activity-results .activity-card").Length())

	id, _ := doc.Find(".activity-card").Attr("data-id")
	assert.Equal(t, "1", id)

	selected := doc.Find(`.filter-group[data-param="category"] .pill.selected`)
	require.Equal(t, 1, selected.Length())
	v, _ := selected.Attr("data-value")
	assert.Equal(t, "Virtual", v)

	hidden, _ := doc.Find(`#activity-search input[name="category"]`).Attr("value")
	assert.Equal(t, "Virtual", hidden)
}

func TestActivitiesFragment(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/fragments/activities?q=zzz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/activities?q=zzz", rr.Header().Get("HX-Replace-Url"))

	doc := parseHTML(t, rr)
	assert.Equal(t, 0, doc.Find("title").Length(), "fragment must not carry the document shell")
	assert.Equal(t, 1, doc.Find("#activity-browser").Length())
	assert.Equal(t, 1, doc.Find("#empty-state").Length())
	assert.Equal(t, 0, doc.Find(".activity-card").Length())

	val, _ := doc.Find("#activity-query").Attr("value")
	assert.Equal(t, "zzz", val)
}

func TestActivityPage(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/activities/2")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(t, rr)
	assert.Equal(t, "Outdoor Adventure Challenge | TeamSync Pro", doc.Find("title").Text())
	assert.Contains(t, doc.Find(".activity-card .description").Text(), "Build trust")

	for _, target := range []string{"/activities/99", "/activities/nope"} {
		rr = get(t, r, target)
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.Contains(t, rr.Body.String(), "Page not found")
	}
}

func TestEventsPageAndFragment(t *testing.T) {
	r := newTestRouter(t)

	rr := get(t, r, "/events")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(t, rr)
	assert.Equal(t, 3, doc.Find("#event-results .event-card").Length())
	assert.Equal(t, "All Events", doc.Find(".pill.selected").Text())

	rr = get(t, r, "/fragments/events?type=In-Person")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/events?type=In-Person", rr.Header().Get("HX-Replace-Url"))
	doc = parseHTML(t, rr)
	require.Equal(t, 1, doc.Find(".event-card").Length())
	assert.Contains(t, doc.Find(".event-card h3").Text(), "Leadership Summit")
	assert.Equal(t, "$599", doc.Find(".event-card .price").Text())
}
