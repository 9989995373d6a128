package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/infra/cache"
	"dropdeck/internal/pkg/config"
)

const (
	publishedKeyNamespace = "custom"
	publishedKeyName      = "active_drop_product_handle"

	collectionGIDPrefix = "gid://shopify/Collection/"
	shopGIDPrefix       = "gid://shopify/Shop/"
)

// Collection is one entry of the merged custom+smart collection listing; ID is
// in the catalog's canonical opaque (GID) form.
type Collection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// Client talks to the commerce platform's admin REST API. All calls carry the
// shop session credential and the caller's context deadline.
type Client struct {
	http     *http.Client
	cfg      config.CatalogConfig
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewClient(cfg config.CatalogConfig, c cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (c *Client) baseURL(sess session.Session) string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	return "https://" + sess.Shop
}

func (c *Client) endpoint(sess session.Session, path string) string {
	return fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL(sess), c.cfg.APIVersion, path)
}

func (c *Client) do(ctx context.Context, sess session.Session, method, rawURL string, body any, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, wrapGatewayErr("failed to encode request body", err, KindUpstream)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return 0, wrapGatewayErr("failed to build catalog request", err, KindUnreachable)
	}
	req.Header.Set("X-Shopify-Access-Token", sess.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, wrapGatewayErr("catalog unreachable", err, KindUnreachable)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, wrapGatewayErr("catalog rejected credentials", nil, KindUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return resp.StatusCode, wrapGatewayErr(fmt.Sprintf("catalog returned %d: %s", resp.StatusCode, string(raw)), nil, KindUpstream)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, wrapGatewayErr("failed to decode catalog response", err, KindUpstream)
		}
	}
	return resp.StatusCode, nil
}

type restCollection struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ListCollections merges the catalog's custom and smart collection kinds,
// sorted by title. Results are cached per shop.
func (c *Client) ListCollections(ctx context.Context, sess session.Session) ([]Collection, error) {
	cacheKey := "catalog:collections:" + sess.Shop
	if cached, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
		var out []Collection
		if json.Unmarshal([]byte(cached), &out) == nil {
			return out, nil
		}
	}

	var merged []Collection
	for _, kind := range []string{"custom_collections", "smart_collections"} {
		var payload map[string][]restCollection
		u := c.endpoint(sess, kind+".json") + "?limit=" + fmt.Sprint(c.cfg.PageLimit)
		if _, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload); err != nil {
			return nil, err
		}
		for _, col := range payload[kind] {
			merged = append(merged, Collection{
				ID:    fmt.Sprintf("%s%d", collectionGIDPrefix, col.ID),
				Title: col.Title,
			})
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return strings.ToLower(merged[i].Title) < strings.ToLower(merged[j].Title)
	})

	if raw, err := json.Marshal(merged); err == nil {
		if err := c.cache.Set(ctx, cacheKey, string(raw), c.cacheTTL); err != nil {
			slog.Debug("collection cache write failed", "error", err)
		}
	}
	return merged, nil
}

type restProduct struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Image  *struct {
		Src string `json:"src"`
	} `json:"image"`
}

// ListActiveProducts enumerates a collection and keeps only products whose
// catalog status is active. When the listing omits statuses (older API
// versions) each product falls back to a per-product status round-trip.
func (c *Client) ListActiveProducts(ctx context.Context, sess session.Session, collectionID string, limit int) ([]Product, error) {
	if limit <= 0 || limit > c.cfg.PageLimit {
		limit = c.cfg.PageLimit
	}

	q := url.Values{}
	q.Set("collection_id", numericID(collectionID))
	q.Set("limit", fmt.Sprint(limit))
	q.Set("fields", "id,title,image,status")

	var payload struct {
		Products []restProduct `json:"products"`
	}
	u := c.endpoint(sess, "products.json") + "?" + q.Encode()
	if _, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload); err != nil {
		return nil, err
	}

	result := make([]Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		status := p.Status
		if status == "" {
			var err error
			status, err = c.productStatus(ctx, sess, p.ID)
			if err != nil {
				return nil, err
			}
		}
		if status != "active" {
			continue
		}
		prod := Product{ID: fmt.Sprint(p.ID), Title: p.Title}
		if p.Image != nil {
			prod.ImageURL = p.Image.Src
		}
		result = append(result, prod)
	}
	return result, nil
}

func (c *Client) productStatus(ctx context.Context, sess session.Session, id int64) (string, error) {
	var payload struct {
		Product struct {
			Status string `json:"status"`
		} `json:"product"`
	}
	u := c.endpoint(sess, fmt.Sprintf("products/%d.json", id)) + "?fields=status"
	status, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", nil
	}
	return payload.Product.Status, nil
}

// ResolveHandle returns the product's stable public handle, or empty when the
// product is deleted or inaccessible. Handles are cached briefly; a product's
// handle rarely changes but its deletion must be noticed within the TTL.
func (c *Client) ResolveHandle(ctx context.Context, sess session.Session, productID string) (string, error) {
	cacheKey := "catalog:handle:" + sess.Shop + ":" + productID
	if cached, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
		return cached, nil
	}

	var payload struct {
		Product struct {
			Handle string `json:"handle"`
		} `json:"product"`
	}
	u := c.endpoint(sess, fmt.Sprintf("products/%s.json", numericID(productID))) + "?fields=handle"
	status, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", nil
	}

	if payload.Product.Handle != "" {
		if err := c.cache.Set(ctx, cacheKey, payload.Product.Handle, c.cacheTTL); err != nil {
			slog.Debug("handle cache write failed", "error", err)
		}
	}
	return payload.Product.Handle, nil
}

// ShopOwnerID resolves the catalog's opaque identifier for the shop record,
// the owner the published key is attached to.
func (c *Client) ShopOwnerID(ctx context.Context, sess session.Session) (string, error) {
	var payload struct {
		Shop struct {
			ID int64 `json:"id"`
		} `json:"shop"`
	}
	u := c.endpoint(sess, "shop.json") + "?fields=id"
	if _, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload); err != nil {
		return "", err
	}
	if payload.Shop.ID == 0 {
		return "", wrapGatewayErr("catalog returned no shop id", nil, KindUpstream)
	}
	return fmt.Sprintf("%s%d", shopGIDPrefix, payload.Shop.ID), nil
}

type restMetafield struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LookupPublishedKey finds the existing published-key instance on the shop
// record, returning its instance id and current value when present.
func (c *Client) LookupPublishedKey(ctx context.Context, sess session.Session) (instanceID, value string, found bool, err error) {
	q := url.Values{}
	q.Set("namespace", publishedKeyNamespace)
	q.Set("key", publishedKeyName)

	var payload struct {
		Metafields []restMetafield `json:"metafields"`
	}
	u := c.endpoint(sess, "metafields.json") + "?" + q.Encode()
	if _, err := c.do(ctx, sess, http.MethodGet, u, nil, &payload); err != nil {
		return "", "", false, err
	}

	for _, mf := range payload.Metafields {
		if mf.Key == publishedKeyName {
			return fmt.Sprint(mf.ID), mf.Value, true, nil
		}
	}
	return "", "", false, nil
}

// WritePublishedKey creates or updates the shop's published key and returns the
// key's instance id.
func (c *Client) WritePublishedKey(ctx context.Context, sess session.Session, instanceID, value string) (string, error) {
	type metafieldBody struct {
		ID        int64  `json:"id,omitempty"`
		Namespace string `json:"namespace,omitempty"`
		Key       string `json:"key,omitempty"`
		Type      string `json:"type"`
		Value     string `json:"value"`
	}
	var payload struct {
		Metafield restMetafield `json:"metafield"`
	}

	if instanceID == "" {
		body := map[string]metafieldBody{"metafield": {
			Namespace: publishedKeyNamespace,
			Key:       publishedKeyName,
			Type:      "single_line_text_field",
			Value:     value,
		}}
		u := c.endpoint(sess, "metafields.json")
		if _, err := c.do(ctx, sess, http.MethodPost, u, body, &payload); err != nil {
			return "", err
		}
	} else {
		body := map[string]metafieldBody{"metafield": {
			Type:  "single_line_text_field",
			Value: value,
		}}
		u := c.endpoint(sess, fmt.Sprintf("metafields/%s.json", instanceID))
		if _, err := c.do(ctx, sess, http.MethodPut, u, body, &payload); err != nil {
			return "", err
		}
	}

	if payload.Metafield.ID != 0 {
		return fmt.Sprint(payload.Metafield.ID), nil
	}
	return instanceID, nil
}

// numericID strips the canonical GID prefix; REST endpoints want bare ids.
func numericID(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}
