package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Cloudinary queries the media provider's search API. Only search is needed:
// event photos are uploaded to the folder hierarchy out-of-band.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://api.cloudinary.com",
		client:    newHTTPClient(),
	}
}

// Configured reports whether all three credentials were provided. A missing
// credential is a server configuration problem, not a reason to crash.
func (c *Cloudinary) Configured() bool {
	return c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

// MediaResource is one stored image as the search API describes it.
type MediaResource struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	CreatedAt string `json:"created_at"`
}

type searchRequest struct {
	Expression string              `json:"expression"`
	SortBy     []map[string]string `json:"sort_by"`
	MaxResults int                 `json:"max_results"`
}

type searchResponse struct {
	Resources []MediaResource `json:"resources"`
}

// Search runs one expression against the search API, newest first, capped at
// 100 results per query.
func (c *Cloudinary) Search(ctx context.Context, expression string) ([]MediaResource, error) {
	payload := searchRequest{
		Expression: expression,
		SortBy:     []map[string]string{{"created_at": "desc"}},
		MaxResults: 100,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode search request")
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/resources/search", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search media")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("cloudinary: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}
	return result.Resources, nil
}

// DeliveryURL prefers the transformed delivery form (auto format, auto
// quality) and falls back to the raw secure URL when no public id is set.
func (c *Cloudinary) DeliveryURL(resource MediaResource) string {
	if resource.PublicID == "" {
		return resource.SecureURL
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/f_auto,q_auto/%s", c.cloudName, resource.PublicID)
}
