package page

import (
	"context"
	"errors"
	"sync"
)

// Element ids the page markup must provide.
const (
	ArtworksID    = "artworks"
	BlogPostsID   = "blog-posts"
	EventsID      = "events-calendar"
	ContactFormID = "contact-form"
)

// ErrNotReady is returned by Submit before the ready signal.
var ErrNotReady = errors.New("page is not ready")

// Options configures a Page.
type Options struct {
	Client   Doer
	BaseURL  string
	Notifier Notifier
	// OnLoadError, when set, receives list load failures. Without it they are
	// dropped and the containers simply stay as they are.
	OnLoadError func(loader string, err error)
}

// Page binds the gallery markup to its loaders and contact form.
type Page struct {
	doc     *Document
	opts    Options
	loaders []Loader
	form    *Form
	contact *ContactFormHandler

	once  sync.Once
	run   *Run
	ready bool
	mu    sync.Mutex
}

// Run tracks the loaders started by Ready.
type Run struct {
	wg sync.WaitGroup
}

// Wait blocks until every loader started by Ready has finished.
func (r *Run) Wait() {
	r.wg.Wait()
}

// New resolves the page elements. A missing element is a setup error; nothing
// is fetched until Ready.
func New(doc *Document, opts Options) (*Page, error) {
	var errs []error
	lookup := func(id string) *Element {
		el, err := doc.ElementByID(id)
		if err != nil {
			errs = append(errs, err)
		}
		return el
	}

	artworks := lookup(ArtworksID)
	blogPosts := lookup(BlogPostsID)
	events := lookup(EventsID)
	formEl := lookup(ContactFormID)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	form, err := BindForm(formEl)
	if err != nil {
		return nil, err
	}

	return &Page{
		doc:  doc,
		opts: opts,
		loaders: []Loader{
			NewArtworkLoader(opts.Client, opts.BaseURL, artworks),
			NewBlogPostLoader(opts.Client, opts.BaseURL, blogPosts),
			NewEventLoader(opts.Client, opts.BaseURL, events),
		},
		form:    form,
		contact: NewContactFormHandler(opts.Client, opts.BaseURL, form, opts.Notifier),
	}, nil
}

// Document returns the bound document.
func (p *Page) Document() *Document {
	return p.doc
}

// Form returns the live contact form state.
func (p *Page) Form() *Form {
	return p.form
}

// Ready is the content-ready signal. It starts every loader concurrently and
// arms the contact form. Later calls return the first Run.
func (p *Page) Ready(ctx context.Context) *Run {
	p.once.Do(func() {
		run := &Run{}
		for _, loader := range p.loaders {
			run.wg.Add(1)
			go func(l Loader) {
				defer run.wg.Done()
				if err := l.Load(ctx); err != nil && p.opts.OnLoadError != nil {
					p.opts.OnLoadError(l.Name(), err)
				}
			}(loader)
		}

		p.mu.Lock()
		p.run = run
		p.ready = true
		p.mu.Unlock()
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run
}

// Submit is the contact form's submit event.
func (p *Page) Submit(ctx context.Context) error {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return ErrNotReady
	}
	return p.contact.Submit(ctx)
}
