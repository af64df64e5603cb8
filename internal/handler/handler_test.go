package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/taskboard/internal/data"
	"github.com/ncobase/taskboard/internal/ecode"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/service"
	"github.com/ncobase/taskboard/internal/structs"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	l := logger.NewLogger()
	l.SetOutput(io.Discard)

	d, cleanup, err := data.NewData(l)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}
	t.Cleanup(cleanup)

	svc := service.NewService(d, l, time.UTC, func() time.Time { return fixedNow })
	h, err := NewHandler(svc, l)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	return do(r, http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func postJSON(r http.Handler, method, target string, v any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(v)
	return do(r, method, target, bytes.NewReader(b), "application/json")
}

func taskForm(title, priority, deadline string) url.Values {
	return url.Values{
		"title":       {title},
		"description": {"details"},
		"priority":    {priority},
		"deadline":    {deadline},
	}
}

func listActive(t *testing.T, r http.Handler) []structs.ReadTask {
	t.Helper()
	w := do(r, http.MethodGet, "/api/tasks", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/tasks = %d: %s", w.Code, w.Body.String())
	}
	var tasks []structs.ReadTask
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return tasks
}

func TestAddFormFlow(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/add", taskForm("Write report", "High", "2024-03-11"))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("POST /add = %d %q", w.Code, w.Header().Get("Location"))
	}

	w = do(r, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	page := w.Body.String()
	for _, want := range []string{"Write report", "1 day left", "2024-03-10", "/edit/1"} {
		if !strings.Contains(page, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestAddFormRejectsBadInput(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/add", taskForm("", "Low", "2024-03-11"))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "All fields are required") {
		t.Errorf("missing title = %d %q", w.Code, w.Body.String())
	}

	w = postForm(r, "/add", taskForm("x", "Low", "2024/13/40"))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Invalid date format") {
		t.Errorf("bad date = %d %q", w.Code, w.Body.String())
	}

	if n := len(listActive(t, r)); n != 0 {
		t.Errorf("store has %d tasks after rejected forms", n)
	}
}

func TestEditPages(t *testing.T) {
	r := setupRouter(t)
	postForm(r, "/add", taskForm("Draft", "Low", "2024-03-20"))

	w := do(r, http.MethodGet, "/edit/1", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `value="Draft"`) {
		t.Fatalf("GET /edit/1 = %d", w.Code)
	}

	for _, path := range []string{"/edit/999", "/edit/abc"} {
		w = do(r, http.MethodGet, path, nil, "")
		if w.Code != http.StatusNotFound || w.Body.String() != "Task not found" {
			t.Errorf("GET %s = %d %q", path, w.Code, w.Body.String())
		}
	}

	w = postForm(r, "/edit/999", taskForm("x", "Low", "2024-03-20"))
	if w.Code != http.StatusNotFound {
		t.Errorf("POST /edit/999 = %d", w.Code)
	}

	w = postForm(r, "/edit/1", taskForm("Final", "Medium", "2024-03-21"))
	if w.Code != http.StatusFound {
		t.Fatalf("POST /edit/1 = %d", w.Code)
	}
	tasks := listActive(t, r)
	if len(tasks) != 1 || tasks[0].Title != "Final" || tasks[0].Priority != structs.PriorityMedium {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestCompleteAndDeletePages(t *testing.T) {
	r := setupRouter(t)
	postForm(r, "/add", taskForm("a", "Low", "2024-03-20"))
	postForm(r, "/add", taskForm("b", "Low", "2024-03-20"))

	for _, path := range []string{"/complete/1", "/complete/1", "/complete/77", "/delete/77"} {
		w := do(r, http.MethodGet, path, nil, "")
		if w.Code != http.StatusFound {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	w := do(r, http.MethodGet, "/completed", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/delete/1") {
		t.Errorf("completed page = %d", w.Code)
	}
	if tasks := listActive(t, r); len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("active = %+v", tasks)
	}

	do(r, http.MethodGet, "/delete/2", nil, "")
	if tasks := listActive(t, r); len(tasks) != 0 {
		t.Errorf("active after delete = %+v", tasks)
	}
}

func TestAPICreateAndGet(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, http.MethodPost, "/api/tasks", structs.TaskBody{Title: "api", Priority: "low", Deadline: "2024-03-09"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/tasks = %d: %s", w.Code, w.Body.String())
	}
	var created structs.ReadTask
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != 1 || created.Priority != structs.PriorityLow {
		t.Errorf("created = %+v", created)
	}

	tasks := listActive(t, r)
	if len(tasks) != 1 || tasks[0].DaysLeft == nil || *tasks[0].DaysLeft != -1 {
		t.Errorf("active = %+v", tasks)
	}

	w = do(r, http.MethodGet, "/api/tasks/1", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/tasks/1 = %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/tasks/2", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /api/tasks/2 = %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/tasks/x", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/tasks/x = %d", w.Code)
	}
}

func TestAPIValidationErrorBody(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, http.MethodPost, "/api/tasks", structs.TaskBody{Title: "x", Priority: "Low", Deadline: "tomorrow"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != ecode.TaskInvalidDate {
		t.Errorf("code = %d", body.Code)
	}
	if _, ok := body.Errors["deadline"]; !ok {
		t.Errorf("errors = %v", body.Errors)
	}

	w = postJSON(r, http.MethodPut, "/api/tasks/5", structs.TaskBody{})
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT unknown id = %d", w.Code)
	}
}

func TestAPICompleteAndDelete(t *testing.T) {
	r := setupRouter(t)
	postJSON(r, http.MethodPost, "/api/tasks", structs.TaskBody{Title: "a", Priority: "High", Deadline: "2024-03-15"})

	cases := []struct {
		method, path string
		want         bool
	}{
		{http.MethodPost, "/api/tasks/1/complete", true},
		{http.MethodPost, "/api/tasks/9/complete", false},
		{http.MethodDelete, "/api/tasks/9", false},
	}
	for _, tc := range cases {
		w := do(r, tc.method, tc.path, nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s = %d", tc.method, tc.path, w.Code)
		}
		var got map[string]bool
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["ok"] != tc.want {
			t.Errorf("%s %s ok = %v, want %v", tc.method, tc.path, got["ok"], tc.want)
		}
	}

	w := do(r, http.MethodGet, "/api/tasks/completed", nil, "")
	var completed []structs.ReadTask
	_ = json.Unmarshal(w.Body.Bytes(), &completed)
	if len(completed) != 1 || completed[0].DaysLeft != nil {
		t.Errorf("completed = %+v", completed)
	}

	w = do(r, http.MethodDelete, "/api/tasks/1", nil, "")
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("delete body = %s", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := do(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"healthy"`) {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
}
