package api

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const proxyPostData = `{"original": "data"}`

// ProxyHandler demonstrates reuse of the shared HTTP client: it POSTs a
// fixed JSON body to the configured target and streams the body it sent
// followed by the body it got back.
type ProxyHandler struct {
	targetURL  string
	httpClient *http.Client
}

// NewProxyHandler creates a new proxy demo handler
func NewProxyHandler(targetURL string, httpClient *http.Client) *ProxyHandler {
	return &ProxyHandler{targetURL: targetURL, httpClient: httpClient}
}

// RequestResponse handles GET /client_request_response
func (p *ProxyHandler) RequestResponse(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, p.targetURL,
		strings.NewReader(proxyPostData))
	if err != nil {
		log.Printf("Error building proxy request: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("Error calling proxy target: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<b>POST request body</b>: %s<br><b>Response</b>: ", proxyPostData)

	// Stream the upstream body through without buffering it.
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("Error streaming proxy response: %v", err)
	}
}
