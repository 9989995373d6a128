package response

import (
	"dropdeck/internal/infra/catalog"
)

type CollectionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ProductResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
}

func FromCollections(cols []catalog.Collection) []CollectionResponse {
	out := make([]CollectionResponse, len(cols))
	for i, c := range cols {
		out[i] = CollectionResponse{ID: c.ID, Title: c.Title}
	}
	return out
}

func FromProducts(prods []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(prods))
	for i, p := range prods {
		out[i] = ProductResponse{ID: p.ID, Title: p.Title, ImageURL: p.ImageURL}
	}
	return out
}
