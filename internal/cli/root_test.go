package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"techstudio/internal/adapter/strapi"
	"techstudio/internal/app"
	"techstudio/internal/config"
	"techstudio/internal/domain/model"
	"techstudio/internal/usecase"
)

type discardLogger struct{}

func (discardLogger) Debug(context.Context, string, ...any) {}
func (discardLogger) Info(context.Context, string, ...any)  {}
func (discardLogger) Warn(context.Context, string, ...any)  {}
func (discardLogger) Error(context.Context, string, ...any) {}

const (
	launchRecord = `{"id":2,"documentId":"d2","attributes":{"title":"Launch week recap","slug":"launch-week","content":"# Recap\n\nWe shipped.","category":"product-news","author":"Ada","publishedDate":"2024-03-15T00:00:00.000Z","createdAt":"c","updatedAt":"u","publishedAt":"p"}}`
	tokyoRecord  = `{"id":1,"documentId":"d1","attributes":{"title":"東京オフィス開設","slug":"tokyo","excerpt":"New office","content":"<p>Hello Tokyo</p>","category":"news","featuredImage":"/uploads/tokyo.jpg","author":"Grace","createdAt":"c","updatedAt":"u","publishedAt":"2024-01-02T09:00:00.000Z"}}`
	listBody     = `{"data":[` + launchRecord + `,` + tokyoRecord + `]}`
)

func runCommand(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	initialize := func(config.File) (*app.App, error) {
		logger := discardLogger{}
		client := usecase.NewArticleClient(strapi.NewClient(srv.URL, time.Second, logger), logger)
		return app.New(client, logger, "@every 1h"), nil
	}

	var out bytes.Buffer
	root := NewRootCommand(initialize)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestListText(t *testing.T) {
	out, err := runCommand(t, serve(listBody), "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "PUBLISHED") {
		t.Errorf("unexpected header %q", lines[0])
	}
	for _, want := range []string{"March 15, 2024", "Product News", "launch-week", "Launch week recap"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q is missing %q", lines[1], want)
		}
	}
	if !strings.Contains(lines[2], "January 2, 2024") || !strings.Contains(lines[2], "東京オフィス開設") {
		t.Errorf("row %q is missing the publishedAt fallback or the title", lines[2])
	}

	// Slug column starts at the same display offset on every line.
	slugCol := strings.Index(lines[1], "launch-week")
	if idx := strings.Index(lines[0], "SLUG"); idx != slugCol {
		t.Errorf("header SLUG at %d, row slug at %d", idx, slugCol)
	}
}

func TestListEmpty(t *testing.T) {
	out, err := runCommand(t, serve(`{"data":[]}`), "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if strings.TrimSpace(out) != noArticlesText {
		t.Errorf("out = %q", out)
	}
}

func TestListFailureIsEmptyNotError(t *testing.T) {
	out, err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "list", "--output", "json")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("out = %q, want []", out)
	}
}

func TestCategoryJSON(t *testing.T) {
	var category string
	out, err := runCommand(t, func(w http.ResponseWriter, r *http.Request) {
		category = r.URL.Query().Get("filters[category][$eq]")
		_, _ = w.Write([]byte(listBody))
	}, "category", "news", "-o", "json")
	if err != nil {
		t.Fatalf("category error = %v", err)
	}
	if category != "news" {
		t.Errorf("server saw category %q", category)
	}

	var got []model.Article
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].Slug != "launch-week" || got[1].FeaturedImage != "/uploads/tokyo.jpg" {
		t.Errorf("unexpected articles: %+v", got)
	}
}

func TestGetYAML(t *testing.T) {
	out, err := runCommand(t, serve(listBody), "get", "launch-week", "--output", "yaml")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}

	var got model.Article
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if got.DocumentID != "d2" || got.Excerpt != "" {
		t.Errorf("unexpected article: %+v", got)
	}
}

func TestGetText(t *testing.T) {
	out, err := runCommand(t, serve(`{"data":[`+tokyoRecord+`]}`), "get", "tokyo")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}

	for _, want := range []string{
		"東京オフィス開設\n",
		"By Grace · January 2, 2024 · News\n",
		"Image: /uploads/tokyo.jpg\n",
		"\nNew office\n",
		"\nHello Tokyo\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestGetHTML(t *testing.T) {
	out, err := runCommand(t, serve(listBody), "get", "launch-week", "--html")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<p>We shipped.</p>") {
		t.Errorf("unexpected html: %q", out)
	}
}

func TestGetNotFound(t *testing.T) {
	_, err := runCommand(t, serve(`{"data":[]}`), "get", "missing")
	if !errors.Is(err, errNotFound) {
		t.Fatalf("expected errNotFound, got %v", err)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := runCommand(t, serve(listBody), "list", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected an output format error, got %v", err)
	}
}

func TestInitializerErrorIsReturned(t *testing.T) {
	root := NewRootCommand(func(config.File) (*app.App, error) {
		return nil, config.ErrInvalidBaseURL
	})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"list"})

	if err := root.Execute(); !errors.Is(err, config.ErrInvalidBaseURL) {
		t.Fatalf("expected the initializer error, got %v", err)
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	srv := httptest.NewServer(serve(`{"data":[]}`))
	t.Cleanup(srv.Close)

	initialize := func(config.File) (*app.App, error) {
		logger := discardLogger{}
		client := usecase.NewArticleClient(strapi.NewClient(srv.URL, time.Second, logger), logger)
		return app.New(client, logger, "@every 1h"), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	root := NewRootCommand(initialize)
	root.SetArgs([]string{"watch"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("watch error = %v", err)
	}
}
