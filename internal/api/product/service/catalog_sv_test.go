package productService

import (
	"YeloSoul/internal/api/product"
	productRepository "YeloSoul/internal/api/product/repository"
	"YeloSoul/internal/entity"
	"YeloSoul/pkg/utils"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeProducts struct {
	catalog []entity.Product
	total   int
	created []entity.Product
}

func (f *fakeProducts) CreateProduct(ctx context.Context, p entity.Product) error {
	f.created = append(f.created, p)
	return nil
}
func (f *fakeProducts) GetByID(ctx context.Context, id string) (entity.Product, error) {
	for _, p := range f.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, product.ErrProductNotFound
}
func (f *fakeProducts) ListProducts(ctx context.Context, q product.ListProductsQuery) ([]entity.Product, int, error) {
	return f.catalog, f.total, nil
}
func (f *fakeProducts) ListAll(ctx context.Context) ([]entity.Product, error) {
	return f.catalog, nil
}
func (f *fakeProducts) UpdateProduct(ctx context.Context, p entity.Product) error { return nil }
func (f *fakeProducts) DeleteProduct(ctx context.Context, id string) error        { return nil }
func (f *fakeProducts) InventoryStats(ctx context.Context) (product.InventoryStatsResponse, error) {
	return product.InventoryStatsResponse{}, nil
}
func (f *fakeProducts) RecalculateRating(ctx context.Context, productID string) error { return nil }

type fakeRepository struct {
	products *fakeProducts
}

func (f *fakeRepository) NewClient(tx bool) (productRepository.Client, error) {
	return productRepository.Client{
		Products: f.products,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newCatalogService(products *fakeProducts) CatalogDomain {
	svc := New(logrus.New(), &fakeRepository{products: products}, nil, utils.New())
	return svc.Catalog()
}

func TestCreateProductRequiresImage(t *testing.T) {
	products := &fakeProducts{}
	s := newCatalogService(products)

	_, err := s.CreateProduct(context.Background(), product.CreateProductRequest{
		Name:  "Gold Ring",
		Price: 120,
	})
	if !errors.Is(err, product.ErrImageRequired) {
		t.Fatalf("err = %v, want ErrImageRequired", err)
	}
	if len(products.created) != 0 {
		t.Errorf("product was persisted despite missing image")
	}
}

func TestCreateProductImageFallsBackToGallery(t *testing.T) {
	products := &fakeProducts{}
	s := newCatalogService(products)

	res, err := s.CreateProduct(context.Background(), product.CreateProductRequest{
		Name:   "Silver Necklace",
		Price:  80,
		Images: []string{"a.jpg", "b.jpg"},
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}

	if res.Image != "a.jpg" {
		t.Errorf("cover image = %q, want first gallery image", res.Image)
	}
	if len(products.created) != 1 {
		t.Fatalf("expected one persisted product, got %d", len(products.created))
	}
	if products.created[0].ID == "" {
		t.Error("persisted product has no generated ID")
	}
}

func TestListProductsPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     product.ListProductsQuery
		total     int
		wantPage  int
		wantPages int
	}{
		{"defaults applied", product.ListProductsQuery{}, 25, 1, 3},
		{"exact multiple", product.ListProductsQuery{Page: 2, Limit: 5}, 20, 2, 4},
		{"partial last page", product.ListProductsQuery{Page: 1, Limit: 10}, 11, 1, 2},
		{"empty catalog", product.ListProductsQuery{}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCatalogService(&fakeProducts{total: tt.total})

			res, err := s.ListProducts(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("ListProducts returned error: %v", err)
			}
			if res.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", res.Page, tt.wantPage)
			}
			if res.Pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", res.Pages, tt.wantPages)
			}
			if res.TotalProducts != tt.total {
				t.Errorf("totalProducts = %d, want %d", res.TotalProducts, tt.total)
			}
		})
	}
}
