package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"beatforge/models"
	"beatforge/repository"
)

type fakeProductRepo struct {
	listOut []models.Product
	listErr error

	insertIn  *models.CreateProductRequest
	insertOut *models.Product
	insertErr error

	deleteIn  string
	deleteErr error
}

var _ repository.ProductRepositoryInterface = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) List(_ context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), f.listOut...), f.listErr
}

func (f *fakeProductRepo) Insert(_ context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	f.insertIn = req
	return f.insertOut, f.insertErr
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	f.deleteIn = id
	return f.deleteErr
}

func loadedCatalog(t *testing.T, products ...models.Product) (*CatalogService, *fakeProductRepo) {
	t.Helper()
	repo := &fakeProductRepo{listOut: products}
	catalog := NewCatalogService(repo)
	require.NoError(t, catalog.Load(context.Background()))
	return catalog, repo
}

func TestCatalogFilter(t *testing.T) {
	midnight := models.Product{ID: "1", Title: "Midnight Echoes", Type: models.ProductTypeBeat, Tags: []string{"dark", "trap"}}
	vintage := models.Product{ID: "2", Title: "Vintage Soul", Type: models.ProductTypeSamplePack, Tags: []string{"soul", "warm"}}

	catalog, _ := loadedCatalog(t, midnight, vintage)

	tests := []struct {
		name     string
		category string
		search   string
		wantIDs  []string
	}{
		{"category beat, empty search", "beat", "", []string{"1"}},
		{"category all, search soul", "all", "soul", []string{"2"}},
		{"category all matches everything", "all", "", []string{"1", "2"}},
		{"empty category behaves like all", "", "", []string{"1", "2"}},
		{"search is case-insensitive on title", "all", "MIDNIGHT", []string{"1"}},
		{"search matches tags", "all", "trap", []string{"1"}},
		{"search matches the category label", "all", "sample", []string{"2"}},
		{"category and search combine", "beat", "soul", nil},
		{"no match", "all", "lofi", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(tt.category, tt.search)
			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogListReturnsSnapshot(t *testing.T) {
	catalog, _ := loadedCatalog(t, models.Product{ID: "1", Title: "One", Type: models.ProductTypeBeat})

	list := catalog.List()
	list[0].Title = "mutated"

	require.Equal(t, "One", catalog.List()[0].Title)
}

func TestCatalogAddPrepends(t *testing.T) {
	catalog, repo := loadedCatalog(t, models.Product{ID: "old", Title: "Old", Type: models.ProductTypeBeat})
	repo.insertOut = &models.Product{ID: "new", Title: "New", Type: models.ProductTypeBeat}

	created, err := catalog.Add(context.Background(), &models.CreateProductRequest{Title: "New", Type: models.ProductTypeBeat})
	require.NoError(t, err)
	require.Equal(t, "new", created.ID)

	list := catalog.List()
	require.Equal(t, []string{"new", "old"}, []string{list[0].ID, list[1].ID})
}

func TestCatalogAddValidation(t *testing.T) {
	catalog, repo := loadedCatalog(t)

	_, err := catalog.Add(context.Background(), &models.CreateProductRequest{Title: "  ", Type: models.ProductTypeBeat})
	require.ErrorContains(t, err, "title is required")

	_, err = catalog.Add(context.Background(), &models.CreateProductRequest{Title: "X", Type: "mixtape"})
	require.ErrorContains(t, err, "invalid product type")

	_, err = catalog.Add(context.Background(), &models.CreateProductRequest{Title: "X", Type: models.ProductTypeBeat, Price: -1})
	require.ErrorContains(t, err, "negative")

	require.Nil(t, repo.insertIn, "validation failures must not reach the repository")
}

func TestCatalogRemoveOptimistic(t *testing.T) {
	catalog, repo := loadedCatalog(t,
		models.Product{ID: "1", Title: "One", Type: models.ProductTypeBeat},
		models.Product{ID: "2", Title: "Two", Type: models.ProductTypeBeat},
	)

	require.NoError(t, catalog.Remove(context.Background(), "1"))
	require.Equal(t, "1", repo.deleteIn)
	require.Len(t, catalog.List(), 1)
	require.Equal(t, "2", catalog.List()[0].ID)
}

func TestCatalogRemoveRollsBackOnFailure(t *testing.T) {
	catalog, repo := loadedCatalog(t,
		models.Product{ID: "1", Title: "One", Type: models.ProductTypeBeat},
		models.Product{ID: "2", Title: "Two", Type: models.ProductTypeBeat},
	)
	repo.deleteErr = errors.New("store unavailable")

	err := catalog.Remove(context.Background(), "1")
	require.Error(t, err)

	// The item reappears after the failure is reported
	list := catalog.List()
	require.Len(t, list, 2)
	require.Equal(t, "1", list[0].ID)
}
