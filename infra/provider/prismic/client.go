package prismic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vaporkeys/storefront/pkg/config"
	"github.com/vaporkeys/storefront/pkg/domain"
)

// Client fetches product documents from a Prismic-style content API.
// It implements content.Store.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	validate    *validator.Validate
	logger      *slog.Logger
}

// productDocument is the wire shape of a product in the content API.
// Required fields are enforced at the boundary; anything missing or
// ill-typed becomes domain.ErrProductContentShape instead of an unchecked
// cast downstream.
type productDocument struct {
	UID  string      `json:"uid"`
	Type string      `json:"type"`
	Data productData `json:"data"`
}

type productData struct {
	Name        string          `json:"name" validate:"required"`
	Price       *int64          `json:"price" validate:"required"`
	Description []RichTextBlock `json:"description"`
	Image       *imageField     `json:"image"`
}

type imageField struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// New creates a content API client using config
func New(cfg *config.Content, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.ApiUrl, "/"),
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// GetProductByUID fetches a product document by its UID.
func (c *Client) GetProductByUID(
	ctx context.Context,
	uid string,
) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/documents/%s", c.baseURL, url.PathEscape(uid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %q: %w", uid, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product %q: %w", uid, domain.ErrProductNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"content API returned status %d: %s",
			resp.StatusCode, string(body),
		)
	}

	var doc productDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf(
				"product %q field %q: %w",
				uid, typeErr.Field, domain.ErrProductContentShape,
			)
		}
		return nil, fmt.Errorf("failed to decode product %q: %w", uid, err)
	}

	if err := c.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf(
			"product %q: %v: %w",
			uid, err, domain.ErrProductContentShape,
		)
	}

	product := &domain.Product{
		UID:         doc.UID,
		Name:        doc.Data.Name,
		Price:       *doc.Data.Price,
		Description: AsText(doc.Data.Description),
	}
	if product.UID == "" {
		product.UID = uid
	}
	if doc.Data.Image != nil {
		product.ImageURL = doc.Data.Image.URL
	}

	c.logger.Debug(
		"Fetched product from content API",
		"uid", product.UID,
		"name", product.Name,
		"price", product.Price,
	)
	return product, nil
}
