package validator

import (
	"testing"
)

type sample struct {
	Title    string `form:"title" validate:"required,max=5"`
	Priority string `json:"priority" validate:"required,oneof=Low Medium High"`
	Deadline string `validate:"required,datetime=2006-01-02"`
}

func byField(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidatePasses(t *testing.T) {
	s := &sample{Title: "ok", Priority: "Low", Deadline: "2024-01-31"}
	if errs := Validate(s); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidateReportsFieldsInOrder(t *testing.T) {
	s := &sample{Title: "", Priority: "Urgent", Deadline: "2024/01/31"}
	errs := Validate(s)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %+v", len(errs), errs)
	}

	want := []struct{ field, tag string }{
		{"title", "required"},
		{"priority", "oneof"},
		{"Deadline", "datetime"},
	}
	for i, w := range want {
		if errs[i].Field != w.field || errs[i].Tag != w.tag {
			t.Errorf("errs[%d] = %s/%s, want %s/%s", i, errs[i].Field, errs[i].Tag, w.field, w.tag)
		}
	}
}

func TestValidateMessages(t *testing.T) {
	got := byField(Validate(&sample{Title: "too long", Priority: "High", Deadline: "2024-02-30"}))

	if msg := got["title"]; msg != "The field 'title' must be no longer than 5 characters." {
		t.Errorf("title message = %q", msg)
	}
	if msg := got["Deadline"]; msg != "The field 'Deadline' must be a valid date in the format 2006-01-02." {
		t.Errorf("deadline message = %q", msg)
	}
	if _, ok := got["priority"]; ok {
		t.Errorf("priority should be valid")
	}
}

func TestOneOfMessage(t *testing.T) {
	got := byField(Validate(&sample{Title: "a", Priority: "x", Deadline: "2024-01-01"}))
	if msg := got["priority"]; msg != "The field 'priority' must be one of: Low, Medium, High." {
		t.Errorf("priority message = %q", msg)
	}

	zh := byField(Validate(&sample{Priority: "Low", Deadline: "2024-01-01"}, "zh"))
	if msg := zh["title"]; msg != "字段 'title' 为必填项。" {
		t.Errorf("zh message = %q", msg)
	}
}
