package page

import (
	"net/http"
	"net/http/httptest"
)

type handlerClient struct {
	handler http.Handler
}

// HandlerClient serves requests with h in-process instead of over the network.
// Relative request URLs are fine.
func HandlerClient(h http.Handler) Doer {
	return handlerClient{handler: h}
}

func (c handlerClient) Do(req *http.Request) (*http.Response, error) {
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w.Result(), nil
}
