package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
)

// RenderClient asks the document-rendering service for the final case PDF and
// returns the stored document's URL. Mock mode fabricates a URL so the
// completion flow can run without the renderer.
type RenderClient struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IDocumentRenderer = (*RenderClient)(nil)

func NewRenderClient() *RenderClient {
	if isRendererMockEnabled() {
		log.Printf("[documents][render] mock mode enabled")
		return &RenderClient{mockMode: true}
	}

	endpoint := os.Getenv("RENDER_SERVICE_URL")
	if endpoint == "" {
		log.Printf("[documents][render] missing RENDER_SERVICE_URL, falling back to mock mode")
		return &RenderClient{mockMode: true}
	}

	return &RenderClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *RenderClient) RenderCasePDF(ctx context.Context, graph entities.CaseGraph) (string, error) {
	if r != nil && r.mockMode {
		url := fmt.Sprintf("mock://documents/case-%s.pdf", graph.Case.ID)
		log.Printf("[documents][render] mock render case_id=%s url=%s", graph.Case.ID, url)
		return url, nil
	}

	body, err := json.Marshal(graph)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("render service returned status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	log.Printf("[documents][render] render success case_id=%s url=%s", graph.Case.ID, out.URL)
	return out.URL, nil
}

func isRendererMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("RENDER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
