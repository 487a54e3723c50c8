package entity

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Image       string         `db:"image"`
	Images      pq.StringArray `db:"images"`
	Price       float64        `db:"price"`
	Stock       int            `db:"stock"`
	Discount    float64        `db:"discount"`
	Rating      float64        `db:"rating"`
	NumReviews  int            `db:"num_reviews"`
	OccasionID  string         `db:"occasion_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// BestImage picks the primary image, falling back to the first gallery
// entry.
func (p Product) BestImage() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

type Review struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
