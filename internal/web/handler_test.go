package web

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/subhankar18r/story-books/internal/middleware"
	"github.com/subhankar18r/story-books/internal/session"
	"github.com/subhankar18r/story-books/internal/story"
	"github.com/subhankar18r/story-books/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testTemplates = template.Must(template.New("").Funcs(FuncMap()).Parse(`
{{define "login.html"}}login page{{end}}
{{define "dashboard.html"}}welcome {{.Name}}{{range .Stories}}[{{.Title}}]{{end}}{{end}}
{{define "404.html"}}not found{{end}}
{{define "500.html"}}server error{{end}}
`))

// countingRepo records whether storage was touched at all.
type countingRepo struct {
	*story.MemoryRepository
	calls int
}

func (c *countingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]story.Story, error) {
	c.calls++
	return c.MemoryRepository.ListByOwner(ctx, ownerID)
}

type testApp struct {
	engine  *gin.Engine
	stories *countingRepo
	store   *session.MemoryStore
	users   *user.MemoryRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		stories: &countingRepo{MemoryRepository: story.NewMemoryRepository()},
		store:   session.NewMemoryStore(),
		users:   user.NewMemoryRepository(),
	}

	h := NewHandler(app.stories)

	r := gin.New()
	r.SetHTMLTemplate(testTemplates)
	r.Use(middleware.ResolvePrincipal(app.store, app.users))
	r.GET("/", middleware.RequireGuest(), h.Login)
	r.GET("/dashboard", middleware.RequireAuth(), h.Dashboard)

	app.engine = r
	return app
}

func (a *testApp) login(t *testing.T, name string) (user.Principal, *http.Cookie) {
	t.Helper()

	p := user.Principal{ID: uuid.New(), Name: name}
	a.users.Add(p)

	token, err := session.GenerateID()
	require.NoError(t, err)
	require.NoError(t, a.store.Create(context.Background(), session.Session{
		SessionID: token,
		UserID:    p.ID.String(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	return p, &http.Cookie{Name: session.CookieName, Value: token}
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestDashboard(t *testing.T) {
	app := newTestApp(t)
	alice, aliceCookie := app.login(t, "Alice")
	bob, _ := app.login(t, "Bob")

	seed := func(owner uuid.UUID, title string, status story.Visibility) {
		s := story.Story{OwnerID: owner, Title: title, Body: "b", Status: status}
		require.NoError(t, app.stories.Create(context.Background(), &s))
	}
	seed(alice.ID, "mine-pub", story.Public)
	seed(alice.ID, "mine-priv", story.Private)
	seed(bob.ID, "theirs", story.Public)

	t.Run("anonymous is redirected without touching storage", func(t *testing.T) {
		w := app.get("/dashboard", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Zero(t, app.stories.calls, "guard must short-circuit before storage")
	})

	t.Run("owner sees own stories, private included, nobody else's", func(t *testing.T) {
		w := app.get("/dashboard", aliceCookie)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "welcome Alice")
		assert.Contains(t, w.Body.String(), "[mine-pub]")
		assert.Contains(t, w.Body.String(), "[mine-priv]")
		assert.NotContains(t, w.Body.String(), "theirs")
	})
}

func TestLoginPage(t *testing.T) {
	app := newTestApp(t)
	_, cookie := app.login(t, "Alice")

	t.Run("anonymous sees the login page", func(t *testing.T) {
		w := app.get("/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "login page")
	})

	t.Run("authenticated visitors are sent to the dashboard", func(t *testing.T) {
		w := app.get("/", cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}
