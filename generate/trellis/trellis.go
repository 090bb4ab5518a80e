// Package trellis provides an HTTP implementation of the Generator
// interface against a TRELLIS-style 3D generation endpoint.
package trellis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/generate"
	"github.com/geoforge/citymodel-go/geometry"
)

// DefaultTimeout bounds one generation round trip; remote 3D generation is
// slow, so the default is generous.
const DefaultTimeout = 5 * time.Minute

// Generator calls a remote TRELLIS-style generation API.
type Generator struct {
	endpoint string
	client   *http.Client
}

// Config contains configuration for the TRELLIS generator.
type Config struct {
	// Endpoint is the base URL of the generation API.
	Endpoint string

	// HTTPClient overrides the default client (useful for tests).
	HTTPClient *http.Client
}

// New creates a TRELLIS generator.
func New(cfg Config) (*Generator, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("trellis endpoint not configured")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Generator{endpoint: cfg.Endpoint, client: client}, nil
}

// Name returns the generator name.
func (g *Generator) Name() string { return "trellis" }

type generateRequest struct {
	Image  string `json:"image,omitempty"`
	Prompt string `json:"prompt,omitempty"`
	Seed   int    `json:"seed,omitempty"`
}

type generateResponse struct {
	Vertices [][]float64 `json:"vertices,omitempty"`
	Faces    [][]int     `json:"faces,omitempty"`
	ModelURL string      `json:"model_url,omitempty"`
}

// Generate sends one generation request and decodes the mesh or file
// reference from the response.
func (g *Generator) Generate(ctx context.Context, req generate.Request) (*generate.Result, error) {
	body := generateRequest{Prompt: req.Prompt, Seed: req.Seed}
	if req.ImagePath != "" {
		data, err := os.ReadFile(req.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("read input image: %w", err)
		}
		body.Image = base64.StdEncoding.EncodeToString(data)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode generation request: %w", err)
	}

	log.Info("requesting 3D generation", "endpoint", g.endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation API returned %s: %s", resp.Status, bytes.TrimSpace(msg))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	return toResult(decoded)
}

func toResult(resp generateResponse) (*generate.Result, error) {
	result := &generate.Result{FilePath: resp.ModelURL}

	if len(resp.Vertices) > 0 {
		mesh := &geometry.Mesh{Faces: resp.Faces}
		for _, v := range resp.Vertices {
			if len(v) != 3 {
				return nil, fmt.Errorf("generation response vertex has %d components", len(v))
			}
			mesh.Vertices = append(mesh.Vertices, geometry.Point{v[0], v[1], v[2]})
		}
		result.MeshData = mesh
	}

	if result.MeshData == nil && result.FilePath == "" {
		return nil, fmt.Errorf("generation response carries neither mesh nor model file")
	}
	return result, nil
}
