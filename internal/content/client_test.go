package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igcsenotes/site/internal/model"
)

// fakeStore serves the query and mutate endpoints of the content API.
type fakeStore struct {
	t *testing.T
	// results maps a query substring to the JSON result it returns.
	results map[string]string
	// lastMutation records the body of the last mutate call.
	lastMutation map[string]any
	queryStatus  int
}

func (f *fakeStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2024-01-01/data/query/production", func(w http.ResponseWriter, r *http.Request) {
		if f.queryStatus != 0 {
			w.WriteHeader(f.queryStatus)
			return
		}
		groq := r.URL.Query().Get("query")
		for needle, result := range f.results {
			if needle == "" || containsType(groq, needle) {
				fmt.Fprintf(w, `{"result":%s}`, result)
				return
			}
		}
		fmt.Fprint(w, `{"result":null}`)
	})
	mux.HandleFunc("/v2024-01-01/data/mutate/production", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			f.t.Fatalf("decode mutation body: %v", err)
		}
		f.lastMutation = body
		fmt.Fprint(w, `{"transactionId":"tx1"}`)
	})
	return mux
}

func containsType(groq, docType string) bool {
	return strings.Contains(groq, `_type == "`+docType+`"`)
}

func newTestClient(t *testing.T, f *fakeStore) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	c := New(Config{
		Endpoint:   srv.URL,
		Dataset:    "production",
		APIVersion: "2024-01-01",
	})
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHeader(t *testing.T) {
	f := &fakeStore{t: t, results: map[string]string{
		"header": `{"_id":"h1","title":"CIE IGCSE Notes","navigation":[{"label":"Home","href":"/"}]}`,
	}}
	c := newTestClient(t, f)

	h, err := c.Header(context.Background())
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "CIE IGCSE Notes", h.Title)
	require.Len(t, h.Navigation, 1)
	assert.Equal(t, "/", h.Navigation[0].Href)
}

func TestHeaderAbsent(t *testing.T) {
	f := &fakeStore{t: t, results: map[string]string{}}
	c := newTestClient(t, f)

	h, err := c.Header(context.Background())
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestQueryHTTPError(t *testing.T) {
	f := &fakeStore{t: t, queryStatus: http.StatusInternalServerError}
	c := newTestClient(t, f)

	_, err := c.Header(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSubjectBySlug(t *testing.T) {
	f := &fakeStore{t: t, results: map[string]string{
		"subjectPage": `{"_id":"s1","subjectName":"Physics","subjectSlug":{"current":"physics"},"pageTitle":"Physics Notes","isPublished":true,"topics":[{"topicName":"Mechanics","displayOrder":1,"subtopics":[{"subtopicName":"Kinematics","subtopicUrl":"https://notes.example.com/kinematics"}]}]}`,
	}}
	c := newTestClient(t, f)

	page, err := c.SubjectBySlug(context.Background(), "physics")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "physics", page.SubjectSlug.Current)
	require.Len(t, page.Topics, 1)
	require.Len(t, page.Topics[0].Subtopics, 1)
	assert.Equal(t, "Kinematics", page.Topics[0].Subtopics[0].Name)
}

func TestSubjectBySlugNotFound(t *testing.T) {
	f := &fakeStore{t: t, results: map[string]string{}}
	c := newTestClient(t, f)

	page, err := c.SubjectBySlug(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestSubjectSlugs(t *testing.T) {
	f := &fakeStore{t: t, results: map[string]string{
		"subjectPage": `["physics","chemistry"]`,
	}}
	c := newTestClient(t, f)

	slugs, err := c.SubjectSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"physics", "chemistry"}, slugs)
}

func TestCreateSubmission(t *testing.T) {
	f := &fakeStore{t: t}
	c := newTestClient(t, f)

	sub := &model.Submission{
		ID:              "id-1",
		FullName:        "Ada Lovelace",
		Country:         "UK",
		Phone:           "+44 1234",
		Email:           "ada@example.com",
		TutoringDetails: "Maths",
		HourlyBudget:    "20",
	}
	require.NoError(t, c.CreateSubmission(context.Background(), sub))

	require.NotNil(t, f.lastMutation)
	mutations, ok := f.lastMutation["mutations"].([]any)
	require.True(t, ok)
	require.Len(t, mutations, 1)
	create := mutations[0].(map[string]any)["create"].(map[string]any)
	assert.Equal(t, "contactForm", create["_type"])
	assert.Equal(t, "Ada Lovelace", create["fullName"])
	assert.Equal(t, "ada@example.com", create["email"])
}
