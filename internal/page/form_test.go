package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const richForm = `<form id="contact-form">
<input type="hidden" name="source" value="homepage">
<input type="text" name="name" value="Guest">
<input type="text" name="locked" value="x" disabled>
<select name="topic"><option value="general">General</option><option value="sales" selected>Sales</option></select>
<input type="checkbox" name="newsletter" checked>
<input type="radio" name="reply" value="email" checked>
<input type="radio" name="reply" value="phone">
<textarea name="message">
Hello</textarea>
<input type="file" name="attachment">
<input type="submit" name="send" value="Send">
</form>`

func bindRichForm(t *testing.T) *Form {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader("<html><body>" + richForm + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := BindForm(mustElement(t, doc, ContactFormID))
	if err != nil {
		t.Fatalf("bind form: %v", err)
	}
	return form
}

func TestBindFormReadsMarkupDefaults(t *testing.T) {
	form := bindRichForm(t)

	want := []Entry{
		{Name: "source", Value: "homepage"},
		{Name: "name", Value: "Guest"},
		{Name: "topic", Value: "sales"},
		{Name: "newsletter", Value: "on"},
		{Name: "reply", Value: "email"},
		{Name: "message", Value: "Hello"},
	}
	if diff := cmp.Diff(want, form.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFormEditAndReset(t *testing.T) {
	form := bindRichForm(t)

	if err := form.Set("name", "Alice"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := form.Check("reply", "phone", true); err != nil {
		t.Fatalf("check radio: %v", err)
	}
	if err := form.Check("newsletter", "on", false); err != nil {
		t.Fatalf("uncheck box: %v", err)
	}
	if err := form.Attach("attachment", File{Name: "cv.pdf", Content: []byte("pdf")}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	want := []Entry{
		{Name: "source", Value: "homepage"},
		{Name: "name", Value: "Alice"},
		{Name: "topic", Value: "sales"},
		{Name: "reply", Value: "phone"},
		{Name: "message", Value: "Hello"},
		{Name: "attachment", File: &File{Name: "cv.pdf", Content: []byte("pdf")}},
	}
	if diff := cmp.Diff(want, form.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	form.Reset()
	if got := form.Value("name"); got != "Guest" {
		t.Fatalf("expected name reset to markup default, got %q", got)
	}
	if n := len(form.Entries()); n != 6 {
		t.Fatalf("expected defaults after reset, got %d entries", n)
	}
}

func TestFormErrors(t *testing.T) {
	form := bindRichForm(t)

	if err := form.Set("missing", "x"); !errors.Is(err, ErrNoSuchField) {
		t.Fatalf("expected ErrNoSuchField, got %v", err)
	}
	if err := form.Set("locked", "x"); !errors.Is(err, ErrNoSuchField) {
		t.Fatalf("expected disabled control to be skipped, got %v", err)
	}
	if err := form.Attach("name", File{Name: "a.txt"}); !errors.Is(err, ErrNotFileField) {
		t.Fatalf("expected ErrNotFileField, got %v", err)
	}
	if err := form.Check("reply", "fax", true); !errors.Is(err, ErrNoSuchField) {
		t.Fatalf("expected ErrNoSuchField for unknown radio value, got %v", err)
	}
}

func TestBindFormRejectsNonForm(t *testing.T) {
	doc := parseTestPage(t)
	if _, err := BindForm(mustElement(t, doc, ArtworksID)); err == nil {
		t.Fatalf("expected error when binding a div")
	}
}

func TestFormTextFields(t *testing.T) {
	form := bindRichForm(t)

	want := []string{"source", "name", "topic", "message"}
	if diff := cmp.Diff(want, form.TextFields()); diff != "" {
		t.Fatalf("text fields mismatch (-want +got):\n%s", diff)
	}
}

func bindFormMarkup(t *testing.T, markup string) *Form {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader("<html><body>" + markup + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := BindForm(mustElement(t, doc, ContactFormID))
	if err != nil {
		t.Fatalf("bind form: %v", err)
	}
	return form
}

func TestFormCheckboxesSharingANameAreIndependent(t *testing.T) {
	form := bindFormMarkup(t, `<form id="contact-form">
<input type="checkbox" name="topic" value="paint">
<input type="checkbox" name="topic" value="sculpt">
<input type="radio" name="reply" value="email" checked>
<input type="radio" name="reply" value="phone">
</form>`)

	if err := form.Check("topic", "paint", true); err != nil {
		t.Fatalf("check paint: %v", err)
	}
	if err := form.Check("topic", "sculpt", true); err != nil {
		t.Fatalf("check sculpt: %v", err)
	}
	if err := form.Check("reply", "phone", true); err != nil {
		t.Fatalf("check phone: %v", err)
	}

	want := []Entry{
		{Name: "topic", Value: "paint"},
		{Name: "topic", Value: "sculpt"},
		{Name: "reply", Value: "phone"},
	}
	if diff := cmp.Diff(want, form.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFormTextareaKeepsLeadingBlankLine(t *testing.T) {
	form := bindFormMarkup(t, "<form id=\"contact-form\"><textarea name=\"message\">\n\nhi</textarea></form>")

	// The parser drops only the newline right after the start tag.
	if got := form.Value("message"); got != "\nhi" {
		t.Fatalf("expected %q, got %q", "\nhi", got)
	}
}
