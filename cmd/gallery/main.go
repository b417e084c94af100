// Command gallery is a headless client for the gallery site. "render" fills
// the page shell from the site's JSON API and prints it; "contact" sends the
// contact form.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/artgallery/internal/config"
	"github.com/artgallery/internal/page"
	"github.com/artgallery/internal/view"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "render":
		err = runRender(ctx, cfg, os.Args[2:])
	case "contact":
		err = runContact(ctx, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gallery render [-base-url URL] [-page FILE] [-output FILE]")
	fmt.Fprintln(os.Stderr, "       gallery contact [-base-url URL] [-field name=value]... [-attach field=path]... [-i]")
}

func runRender(ctx context.Context, cfg config.ClientConfig, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	baseURL := fs.String("base-url", cfg.BaseURL, "site base URL")
	pagePath := fs.String("page", "", "page markup to fill (built-in shell if empty)")
	output := fs.String("output", "", "output file (stdout if empty)")
	verbose := fs.Bool("v", false, "report list load failures")
	fs.Parse(args)

	doc, err := loadDocument(*pagePath)
	if err != nil {
		return err
	}

	opts := page.Options{
		Client:  &http.Client{Timeout: cfg.Timeout},
		BaseURL: *baseURL,
	}
	if *verbose {
		opts.OnLoadError = func(loader string, err error) {
			log.Printf("load %s: %v", loader, err)
		}
	}

	p, err := page.New(doc, opts)
	if err != nil {
		return err
	}
	p.Ready(ctx).Wait()

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if *output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("page written to %s", *output)
	return nil
}

func loadDocument(path string) (*page.Document, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		defer f.Close()
		return page.ParseDocument(f)
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "home.html", map[string]any{"title": "Home", "siteName": "Art Gallery"}); err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}
	return page.ParseDocument(&buf)
}
