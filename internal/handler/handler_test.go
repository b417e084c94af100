package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/artgallery/internal/db"
	"github.com/artgallery/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

type testServer struct {
	handler   http.Handler
	db        *gorm.DB
	uploadDir string
	cookies   []*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	uploadDir := t.TempDir()
	r, err := router.SetupRouter(gdb, router.Config{SessionSecret: "test-secret", UploadDir: uploadDir, UploadURLPath: "/static/uploads", SiteName: "Harbour Gallery"})
	if err != nil {
		t.Fatalf("setup router: %v", err)
	}
	return &testServer{handler: r, db: gdb, uploadDir: uploadDir}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	for _, cookie := range s.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		s.cookies = cookies
	}
	return w
}

func (s *testServer) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

func (s *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func (s *testServer) registerAndLogin(t *testing.T) {
	t.Helper()
	expectStatus(t, s.postJSON(t, "/api/register", map[string]string{
		"username": "curator", "email": "curator@example.com", "password": "secret",
	}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/login", map[string]string{
		"username": "curator", "password": "secret",
	}), http.StatusOK)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t)

	w := s.postJSON(t, "/api/register", map[string]string{
		"username": "curator", "email": "new@example.com", "password": "x",
	})
	expectStatus(t, w, http.StatusBadRequest)
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	w = s.postJSON(t, "/api/login", map[string]string{"username": "curator", "password": "nope"})
	expectStatus(t, w, http.StatusUnauthorized)

	expectStatus(t, s.postJSON(t, "/api/register", map[string]string{"username": "x"}), http.StatusBadRequest)
}

func TestArtworkEndpoints(t *testing.T) {
	s := newTestServer(t)

	expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{
		"title": "Sunset", "description": "oil on canvas", "image": "a.png", "category": "painting",
	}), http.StatusBadRequest)

	s.registerAndLogin(t)
	for _, title := range []string{"Sunset", "Harbor"} {
		expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{
			"title": title, "description": "oil on canvas", "image": title + ".png", "category": "painting",
		}), http.StatusCreated)
	}
	expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{"title": "No image"}), http.StatusBadRequest)

	w := s.get(t, "/api/artworks")
	expectStatus(t, w, http.StatusOK)

	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode artworks: %v", err)
	}
	want := []map[string]any{
		{"id": float64(1), "title": "Sunset", "description": "oil on canvas", "image": "Sunset.png", "category": "painting", "user_id": float64(1)},
		{"id": float64(2), "title": "Harbor", "description": "oil on canvas", "image": "Harbor.png", "category": "painting", "user_id": float64(1)},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("artworks mismatch (-want +got):\n%s", diff)
	}

	expectStatus(t, s.postJSON(t, "/api/feedback", map[string]any{"content": "lovely", "artwork_id": 1}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/feedback", map[string]any{"content": "lovely", "artwork_id": 42}), http.StatusNotFound)
}

func TestListsAreEmptyArrays(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/artworks", "/api/blog-posts", "/api/events"} {
		w := s.get(t, path)
		expectStatus(t, w, http.StatusOK)
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("%s: expected empty array, got %s", path, w.Body.String())
		}
	}
}

func TestBlogAndEventEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t)

	expectStatus(t, s.postJSON(t, "/api/blog-posts", map[string]any{
		"title": "Opening", "content": "We open **Friday**",
	}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/events", map[string]any{
		"title": "Vernissage", "description": "Drinks", "date": "2026-11-02",
	}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/events", map[string]any{"title": "No date", "description": "x"}), http.StatusBadRequest)

	w := s.get(t, "/api/blog-posts")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"content":"We open **Friday**"`) {
		t.Fatalf("unexpected blog posts %s", w.Body.String())
	}

	w = s.get(t, "/api/events")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"date":"2026-11-02"`) {
		t.Fatalf("unexpected events %s", w.Body.String())
	}

	w = s.get(t, "/blog/1")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "<strong>Friday</strong>") {
		t.Fatalf("expected markdown rendered on post page, got %s", w.Body.String())
	}
	expectStatus(t, s.get(t, "/blog/99"), http.StatusNotFound)
}

func TestSubmitContact(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("name", "Alice")
	writer.WriteField("email", "a@example.com")
	writer.WriteField("message", "hi")
	part, _ := writer.CreateFormFile("attachment", "sketch.png")
	part.Write([]byte("png"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := s.do(t, req)
	expectStatus(t, w, http.StatusCreated)

	var message db.ContactMessage
	if err := s.db.Preload("Attachments").First(&message).Error; err != nil {
		t.Fatalf("load contact message: %v", err)
	}
	if message.Name != "Alice" || message.Email != "a@example.com" || message.Message != "hi" {
		t.Fatalf("unexpected stored message %+v", message)
	}
	if len(message.Attachments) != 1 {
		t.Fatalf("expected one attachment, got %d", len(message.Attachments))
	}

	expectStatus(t, s.get(t, message.Attachments[0].URL), http.StatusOK)

	jsonReq := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Bob"}`))
	jsonReq.Header.Set("Content-Type", "application/json")
	expectStatus(t, s.do(t, jsonReq), http.StatusBadRequest)
}

func TestShowHomePrerendersLists(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t)

	expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{
		"title": "Sunset", "description": "oil on canvas", "image": "a.png", "category": "painting",
	}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/events", map[string]any{
		"title": "Vernissage", "description": "Drinks", "date": "Nov 2",
	}), http.StatusCreated)

	w := s.get(t, "/")
	expectStatus(t, w, http.StatusOK)

	html := w.Body.String()
	for _, want := range []string{
		`<div id="artworks"><div class="artwork"><img src="a.png" alt="Sunset"/><h3>Sunset</h3><p>oil on canvas</p></div></div>`,
		`<div id="blog-posts"></div>`,
		`<div class="event"><h3>Vernissage</h3><p>Nov 2</p><p>Drinks</p></div>`,
		`id="contact-form"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("home page misses %s:\n%s", want, html)
		}
	}
}

func TestShowHomeFollowsAcceptLanguage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	w := s.do(t, req)
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `<html lang="zh-CN">`) {
		t.Fatalf("expected zh-CN page language:\n%s", w.Body.String())
	}

	w = s.get(t, "/")
	if !strings.Contains(w.Body.String(), `<html lang="en">`) {
		t.Fatalf("expected default en page language:\n%s", w.Body.String())
	}
}

func TestCreateRejectsUnknownUser(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t)

	w := s.postJSON(t, "/api/artworks", map[string]any{
		"title": "Ghost", "description": "x", "image": "g.png", "category": "painting", "user_id": 42,
	})
	expectStatus(t, w, http.StatusBadRequest)
	if !strings.Contains(w.Body.String(), "Unknown user") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	expectStatus(t, s.postJSON(t, "/api/blog-posts", map[string]any{
		"title": "Ghost", "content": "x", "user_id": 42,
	}), http.StatusBadRequest)

	expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{
		"title": "Sunset", "description": "x", "image": "a.png", "category": "painting",
	}), http.StatusCreated)
	expectStatus(t, s.postJSON(t, "/api/feedback", map[string]any{
		"content": "lovely", "artwork_id": 1, "user_id": 42,
	}), http.StatusBadRequest)

	var count int64
	s.db.Model(&db.Feedback{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no feedback rows, got %d", count)
	}
}

func TestListFeedback(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t)

	expectStatus(t, s.postJSON(t, "/api/artworks", map[string]any{
		"title": "Sunset", "description": "x", "image": "a.png", "category": "painting",
	}), http.StatusCreated)
	for _, content := range []string{"lovely", "bold colours"} {
		expectStatus(t, s.postJSON(t, "/api/feedback", map[string]any{"content": content, "artwork_id": 1}), http.StatusCreated)
	}

	w := s.get(t, "/api/artworks/1/feedback")
	expectStatus(t, w, http.StatusOK)
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode feedback: %v", err)
	}
	want := []map[string]any{
		{"id": float64(1), "content": "lovely", "user_id": float64(1), "artwork_id": float64(1)},
		{"id": float64(2), "content": "bold colours", "user_id": float64(1), "artwork_id": float64(1)},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("feedback mismatch (-want +got):\n%s", diff)
	}

	expectStatus(t, s.get(t, "/api/artworks/9/feedback"), http.StatusNotFound)
	expectStatus(t, s.get(t, "/api/artworks/abc/feedback"), http.StatusBadRequest)
}

func postContactFields(t *testing.T, s *testServer, fields [][2]string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, field := range fields {
		writer.WriteField(field[0], field[1])
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	expectStatus(t, s.do(t, req), http.StatusCreated)
}

func TestSubmitContactStoresExtraFieldsInStableOrder(t *testing.T) {
	s := newTestServer(t)
	postContactFields(t, s, [][2]string{{"zeta", "z"}, {"name", "Alice"}, {"alpha", "a"}, {"middle", "m"}})

	var fields []db.ContactField
	if err := s.db.Order("id asc").Find(&fields).Error; err != nil {
		t.Fatalf("load fields: %v", err)
	}
	var got []string
	for _, field := range fields {
		got = append(got, field.Name)
	}
	if diff := cmp.Diff([]string{"alpha", "middle", "zeta"}, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestListContactMessagesRequiresLogin(t *testing.T) {
	s := newTestServer(t)
	postContactFields(t, s, [][2]string{{"name", "Alice"}, {"message", "Tom & Jerry"}})
	postContactFields(t, s, [][2]string{{"name", "Bob"}, {"subject", "print"}})

	expectStatus(t, s.get(t, "/api/contact"), http.StatusUnauthorized)

	s.registerAndLogin(t)
	w := s.get(t, "/api/contact?limit=1")
	expectStatus(t, w, http.StatusOK)
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(items) != 1 || items[0]["name"] != "Bob" {
		t.Fatalf("expected newest message only, got %v", items)
	}
	if diff := cmp.Diff(map[string]any{"subject": "print"}, items[0]["fields"]); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	w = s.get(t, "/api/contact")
	expectStatus(t, w, http.StatusOK)
	items = nil
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(items) != 2 || items[1]["message"] != "Tom & Jerry" {
		t.Fatalf("expected both messages with plain text, got %v", items)
	}
	expectStatus(t, s.get(t, "/api/contact?limit=0"), http.StatusBadRequest)
}

func TestPagesUseConfiguredSiteName(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "<title>Home · Harbour Gallery</title>") {
		t.Fatalf("expected configured site name in title:\n%s", w.Body.String())
	}
}
