package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahstack/shopchat/internal/catalog"
	"github.com/ahstack/shopchat/internal/models"
)

type fakeCatalog struct {
	products []models.Product
	err      error
}

func (f *fakeCatalog) FetchAll(context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func newProductApp(cat *fakeCatalog) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewProductHandler(cat).Register(api)
	return app
}

func TestProducts_ReturnsCatalog(t *testing.T) {
	cat := &fakeCatalog{products: []models.Product{
		{ID: 1, Title: "iPhone 9", Price: 549, Rating: 4.69},
	}}
	app := newProductApp(cat)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "iPhone 9", out[0].Title)
}

func TestProducts_UnavailableMapsTo502(t *testing.T) {
	app := newProductApp(&fakeCatalog{err: catalog.ErrUnavailable})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "upstream_unavailable")
}

func TestProducts_MalformedMapsTo502WithDistinctCode(t *testing.T) {
	app := newProductApp(&fakeCatalog{err: catalog.ErrMalformed})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "upstream_malformed")
}

func TestHealth_ReportsCatalogState(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(&fakeCatalog{}).Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
	assert.Contains(t, string(body), `"catalog":"connected"`)
}
