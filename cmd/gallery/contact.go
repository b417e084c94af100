package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/artgallery/internal/config"
	"github.com/artgallery/internal/page"
)

type pairFlag []string

func (p *pairFlag) String() string {
	return strings.Join(*p, ",")
}

func (p *pairFlag) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	*p = append(*p, value)
	return nil
}

func runContact(ctx context.Context, cfg config.ClientConfig, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	baseURL := fs.String("base-url", cfg.BaseURL, "site base URL")
	pagePath := fs.String("page", "", "page markup holding the contact form (built-in shell if empty)")
	interactive := fs.Bool("i", false, "prompt for every text field")
	var fields, attachments pairFlag
	fs.Var(&fields, "field", "form field as name=value (repeatable)")
	fs.Var(&attachments, "attach", "file input as field=path (repeatable)")
	fs.Parse(args)

	doc, err := loadDocument(*pagePath)
	if err != nil {
		return err
	}

	p, err := page.New(doc, page.Options{
		Client:   &http.Client{Timeout: cfg.Timeout},
		BaseURL:  *baseURL,
		Notifier: terminalNotifier{interactive: *interactive},
	})
	if err != nil {
		return err
	}
	form := p.Form()

	for _, pair := range fields {
		name, value, _ := strings.Cut(pair, "=")
		if err := form.Set(name, value); err != nil {
			return err
		}
	}
	for _, pair := range attachments {
		name, path, _ := strings.Cut(pair, "=")
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		if err := form.Attach(name, page.File{Name: filepath.Base(path), Content: content}); err != nil {
			return err
		}
	}
	if *interactive {
		if err := promptFields(form); err != nil {
			return err
		}
	}

	// The loaders start too, as they would in a browser; only the submission matters here.
	p.Ready(ctx)
	return p.Submit(ctx)
}

func promptFields(form *page.Form) error {
	for _, name := range form.TextFields() {
		var answer string
		prompt := &survey.Input{
			Message: name,
			Default: form.Value(name),
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return errors.New("cancelled")
			}
			return err
		}
		if err := form.Set(name, answer); err != nil {
			return err
		}
	}
	return nil
}

// terminalNotifier prints alerts; in interactive mode it waits for an
// acknowledgement the way a modal dialog does.
type terminalNotifier struct {
	interactive bool
}

func (n terminalNotifier) Alert(message string) {
	if !n.interactive {
		fmt.Fprintln(os.Stderr, message)
		return
	}
	var ok bool
	survey.AskOne(&survey.Confirm{Message: message, Default: true}, &ok)
}
