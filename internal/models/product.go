package models

// Product is an immutable snapshot of one catalog record as served by the
// upstream products API. It lives only for the duration of a single request.
type Product struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	DiscountPercentage  float64  `json:"discountPercentage,omitempty"`
	Rating              float64  `json:"rating,omitempty"`
	Stock               int      `json:"stock,omitempty"`
	Brand               string   `json:"brand,omitempty"`
	Category            string   `json:"category,omitempty"`
	Thumbnail           string   `json:"thumbnail,omitempty"`
	Images              []string `json:"images,omitempty"`
	WarrantyInformation string   `json:"warrantyInformation,omitempty"`
	ShippingInformation string   `json:"shippingInformation,omitempty"`
}
