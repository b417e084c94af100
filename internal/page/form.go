package page

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// ErrNoSuchField is returned when a form has no control with the given name.
var ErrNoSuchField = errors.New("no such form field")

// ErrNotFileField is returned when attaching a file to a non-file control.
var ErrNotFileField = errors.New("field is not a file input")

// File is a file chosen in a file input.
type File struct {
	Name    string
	Content []byte
}

// Entry is one name/value pair of a form snapshot. File is set for file inputs.
type Entry struct {
	Name  string
	Value string
	File  *File
}

type fieldKind int

const (
	textField fieldKind = iota
	checkField
	fileField
)

type formField struct {
	name  string
	kind  fieldKind
	radio bool

	defaultValue   string
	defaultChecked bool

	value   string
	checked bool
	files   []File
}

// Form holds the live state of a form's controls. Values start from the
// markup defaults and Reset returns them there.
type Form struct {
	mu     sync.Mutex
	fields []*formField
}

// BindForm reads the controls of a <form> element.
func BindForm(el *Element) (*Form, error) {
	if el.Tag() != "form" {
		return nil, fmt.Errorf("bind form: element is <%s>, not <form>", el.Tag())
	}

	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()

	f := &Form{}
	walk(el.node, func(n *html.Node) {
		if n.Type != html.ElementNode || hasAttr(n, "disabled") {
			return
		}
		name := attr(n, "name")
		if name == "" {
			return
		}
		if field := controlField(n, name); field != nil {
			f.fields = append(f.fields, field)
		}
	})
	f.reset()
	return f, nil
}

func controlField(n *html.Node, name string) *formField {
	switch n.Data {
	case "textarea":
		return &formField{name: name, kind: textField, defaultValue: textContent(n)}
	case "select":
		return &formField{name: name, kind: textField, defaultValue: selectedOption(n)}
	case "input":
		switch strings.ToLower(attr(n, "type")) {
		case "submit", "button", "reset", "image":
			return nil
		case "file":
			return &formField{name: name, kind: fileField}
		case "checkbox", "radio":
			value := "on"
			if hasAttr(n, "value") {
				value = attr(n, "value")
			}
			return &formField{
				name:           name,
				kind:           checkField,
				radio:          strings.EqualFold(attr(n, "type"), "radio"),
				defaultValue:   value,
				defaultChecked: hasAttr(n, "checked"),
			}
		default:
			return &formField{name: name, kind: textField, defaultValue: attr(n, "value")}
		}
	}
	return nil
}

func selectedOption(sel *html.Node) string {
	var first, selected *html.Node
	walk(sel, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "option" {
			return
		}
		if first == nil {
			first = n
		}
		if selected == nil && hasAttr(n, "selected") {
			selected = n
		}
	})
	opt := selected
	if opt == nil {
		opt = first
	}
	if opt == nil {
		return ""
	}
	if hasAttr(opt, "value") {
		return attr(opt, "value")
	}
	return strings.TrimSpace(textContent(opt))
}

// TextFields lists the names of the text controls in document order.
func (f *Form) TextFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var names []string
	for _, field := range f.fields {
		if field.kind == textField {
			names = append(names, field.name)
		}
	}
	return names
}

// Set assigns the value of the first text control named name.
func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range f.fields {
		if field.name == name && field.kind == textField {
			field.value = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchField, name)
}

// Value returns the current value of the first text control named name.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range f.fields {
		if field.name == name && field.kind == textField {
			return field.value
		}
	}
	return ""
}

// Check toggles the checkbox or radio named name whose value matches.
// Checking a radio clears the other radios of the group; checkboxes sharing a
// name are independent.
func (f *Form) Check(name, value string, checked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := false
	for _, field := range f.fields {
		if field.name != name || field.kind != checkField {
			continue
		}
		if field.defaultValue == value {
			field.checked = checked
			found = true
		} else if checked && field.radio {
			field.checked = false
		}
	}
	if !found {
		return fmt.Errorf("%w: %s=%s", ErrNoSuchField, name, value)
	}
	return nil
}

// Attach adds a file to the file input named name.
func (f *Form) Attach(name string, file File) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range f.fields {
		if field.name != name {
			continue
		}
		if field.kind != fileField {
			return fmt.Errorf("%w: %s", ErrNotFileField, name)
		}
		field.files = append(field.files, file)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNoSuchField, name)
}

// Entries snapshots the form the way a browser builds form data: text
// controls always, checkboxes and radios only when checked, and one entry
// per chosen file. File inputs with nothing chosen are left out.
func (f *Form) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	var entries []Entry
	for _, field := range f.fields {
		switch field.kind {
		case textField:
			entries = append(entries, Entry{Name: field.name, Value: field.value})
		case checkField:
			if field.checked {
				entries = append(entries, Entry{Name: field.name, Value: field.defaultValue})
			}
		case fileField:
			for _, file := range field.files {
				file := file
				file.Content = append([]byte(nil), file.Content...)
				entries = append(entries, Entry{Name: field.name, File: &file})
			}
		}
	}
	return entries
}

// Reset restores every control to its markup default and drops chosen files.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	for _, field := range f.fields {
		field.value = field.defaultValue
		field.checked = field.defaultChecked
		field.files = nil
	}
}
