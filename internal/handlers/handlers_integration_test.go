package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

// setupApp builds a Fiber app over a fresh in-memory SQLite database with all
// handlers wired, the same way main does. Each call gets its own database so
// tests cannot see each other's records; the connection is closed in cleanup.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory database")

	err = db.AutoMigrate(&models.Seller{}, &models.Category{}, &models.Product{})
	require.NoError(t, err, "failed to auto-migrate database")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	sellerRepo := repositories.NewGORMSellerRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// nil publisher: no broker in tests
	sellerService := services.NewSellerService(sellerRepo, nil)
	categoryService := services.NewCategoryService(categoryRepo, nil)
	productService := services.NewProductService(productRepo, nil)

	sellerHandler := handlers.NewSellerHandler(sellerService, productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, sellerService, categoryService)

	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Welcome to Products API",
		})
	})

	api := app.Group("/api")
	sellerHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	return app
}

// doJSON performs a request with an optional JSON body and returns the response.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	return resp
}

// decodeMap decodes a JSON object response body.
func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes a JSON array response body.
func decodeList(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body []interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// createSeller creates a seller through the API and returns its id.
func createSeller(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/sellers", map[string]interface{}{
		"name":     "Test Seller",
		"email":    email,
		"phone":    "9876543210",
		"location": "New Location",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// createCategory creates a category through the API and returns its id.
func createCategory(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Test Category",
		"description": "Test description",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestWelcomeRoute(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "Welcome to Products API", body["message"])
}

func TestSellerCRUD(t *testing.T) {
	app := setupApp(t)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/sellers", map[string]interface{}{
		"name":     "Test Seller",
		"email":    "new@example.com",
		"phone":    "9876543210",
		"location": "New Location",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	assert.Equal(t, "Test Seller", created["name"])
	sellerID := created["id"].(string)
	assert.NotEmpty(t, sellerID)

	// List: entry carries the four standard links plus the products filter link
	resp = doJSON(t, app, http.MethodGet, "/api/sellers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	sellers := body["sellers"].([]interface{})
	require.Len(t, sellers, 1)
	entry := sellers[0].(map[string]interface{})
	assert.Equal(t, "Test Seller", entry["name"])
	links := entry["_links"].(map[string]interface{})
	for _, key := range []string{"self", "collection", "update", "delete", "products"} {
		assert.Contains(t, links, key)
	}
	self := links["self"].(map[string]interface{})
	assert.Equal(t, "/sellers/"+sellerID, self["href"])
	productsLink := links["products"].(map[string]interface{})
	assert.Equal(t, "/products?seller="+sellerID, productsLink["href"])

	// Get by id: no products yet, so no products entry in the links
	resp = doJSON(t, app, http.MethodGet, "/api/sellers/"+sellerID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	seller := body["seller"].(map[string]interface{})
	assert.Equal(t, "Test Seller", seller["name"])
	links = seller["_links"].(map[string]interface{})
	assert.Contains(t, links, "self")
	assert.NotContains(t, links, "products")

	// Update is partial: untouched fields survive
	resp = doJSON(t, app, http.MethodPut, "/api/sellers/"+sellerID, map[string]interface{}{
		"name": "Updated Seller",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, resp)
	assert.Equal(t, "Updated Seller", updated["name"])
	assert.Equal(t, "new@example.com", updated["email"])
	assert.Equal(t, "New Location", updated["location"])

	// Delete, then the id is gone
	resp = doJSON(t, app, http.MethodDelete, "/api/sellers/"+sellerID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Seller deleted successfully", body["message"])

	resp = doJSON(t, app, http.MethodGet, "/api/sellers/"+sellerID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Seller not found", body["message"])
}

func TestSellerValidationAndNotFound(t *testing.T) {
	app := setupApp(t)

	// Missing location
	resp := doJSON(t, app, http.MethodPost, "/api/sellers", map[string]interface{}{
		"name":  "Incomplete Seller",
		"email": "incomplete@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Name, email, and location are required", body["message"])

	// Empty name is rejected, empty email is not: email only has to be present
	resp = doJSON(t, app, http.MethodPost, "/api/sellers", map[string]interface{}{
		"name":     "",
		"email":    "empty-name@example.com",
		"location": "Somewhere",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/sellers", map[string]interface{}{
		"name":     "Empty Email Seller",
		"email":    "",
		"location": "Somewhere",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Well-formed but absent ids always map to 404, never 500
	const missingID = "65d1234567890abcdef12345"
	resp = doJSON(t, app, http.MethodGet, "/api/sellers/"+missingID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Seller not found", body["message"])

	resp = doJSON(t, app, http.MethodPut, "/api/sellers/"+missingID, map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/sellers/"+missingID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSellerUpdateRejectsEmptyName(t *testing.T) {
	app := setupApp(t)

	sellerID := createSeller(t, app, "keepname@example.com")

	// name is constrained the same way on update as on create: present means
	// non-empty
	resp := doJSON(t, app, http.MethodPut, "/api/sellers/"+sellerID, map[string]interface{}{
		"name": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Validation failed", body["message"])

	// The stored record is untouched
	resp = doJSON(t, app, http.MethodGet, "/api/sellers/"+sellerID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	seller := body["seller"].(map[string]interface{})
	assert.Equal(t, "Test Seller", seller["name"])
}

func TestSellerEmbedsProductSummaries(t *testing.T) {
	app := setupApp(t)

	sellerID := createSeller(t, app, "withproducts@example.com")

	for i, name := range []string{"Widget", "Gadget"} {
		resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
			"name":     name,
			"quantity": 5 + i,
			"price":    50.0,
			"seller":   sellerID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/sellers/"+sellerID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	seller := body["seller"].(map[string]interface{})
	links := seller["_links"].(map[string]interface{})

	summaries, ok := links["products"].([]interface{})
	require.True(t, ok, "products should be an embedded list, not a link")
	require.Len(t, summaries, 2)
	first := summaries[0].(map[string]interface{})
	for _, key := range []string{"name", "price", "quantity", "href"} {
		assert.Contains(t, first, key)
	}
	assert.Equal(t, "/products?seller="+sellerID, first["href"])
}

func TestCategoryCRUD(t *testing.T) {
	app := setupApp(t)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Test Category",
		"description": "Test description",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	assert.Equal(t, "Test Category", created["name"])
	categoryID := created["id"].(string)
	assert.NotEmpty(t, categoryID)

	// List: categories link to their products, never embed them
	resp = doJSON(t, app, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	categories := body["categories"].([]interface{})
	require.Len(t, categories, 1)
	entry := categories[0].(map[string]interface{})
	links := entry["_links"].(map[string]interface{})
	productsLink := links["products"].(map[string]interface{})
	assert.Equal(t, "/products?category="+categoryID, productsLink["href"])

	// Get by id
	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "Test Category", category["name"])
	links = category["_links"].(map[string]interface{})
	self := links["self"].(map[string]interface{})
	assert.Equal(t, "/categories/"+categoryID, self["href"])

	// Update
	resp = doJSON(t, app, http.MethodPut, "/api/categories/"+categoryID, map[string]interface{}{
		"description": "Updated description",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, resp)
	assert.Equal(t, "Test Category", updated["name"])
	assert.Equal(t, "Updated description", updated["description"])

	// Delete
	resp = doJSON(t, app, http.MethodDelete, "/api/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Category deleted successfully", body["message"])

	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryValidationAndNotFound(t *testing.T) {
	app := setupApp(t)

	// Missing description
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "No Description",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Name, and description are required", body["message"])

	// Empty description passes: it only has to be present
	resp = doJSON(t, app, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Empty Description",
		"description": "",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Well-formed but absent id
	resp = doJSON(t, app, http.MethodGet, "/api/categories/65f5dff06a3e9e72bdfaa123", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Category not found", body["message"])
}

func TestCategoryUpdateRejectsEmptyName(t *testing.T) {
	app := setupApp(t)

	categoryID := createCategory(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/categories/"+categoryID, map[string]interface{}{
		"name": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Validation failed", body["message"])

	// Clearing the description stays allowed: only name is constrained
	resp = doJSON(t, app, http.MethodPut, "/api/categories/"+categoryID, map[string]interface{}{
		"description": "",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, resp)
	assert.Equal(t, "Test Category", updated["name"])
	assert.Equal(t, "", updated["description"])
}

func TestProductCRUD(t *testing.T) {
	app := setupApp(t)

	sellerID := createSeller(t, app, "productowner@example.com")
	categoryID := createCategory(t, app)

	// Create with weak references
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Test Product",
		"quantity": 5,
		"price":    50,
		"seller":   sellerID,
		"category": categoryID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	assert.Equal(t, "Test Product", created["name"])
	productID := created["id"].(string)
	assert.NotEmpty(t, productID)

	// List is a bare array
	resp = doJSON(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products := decodeList(t, resp)
	assert.Len(t, products, 1)

	// Get by id: double-nested shape with resolved references
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	wrapper := body["product"].(map[string]interface{})
	inner := wrapper["product"].(map[string]interface{})
	assert.Equal(t, "Test Product", inner["name"])

	sellerRef := inner["seller"].(map[string]interface{})
	assert.Equal(t, "Test Seller", sellerRef["name"])
	assert.Equal(t, "/sellers/"+sellerID, sellerRef["href"])
	categoryRef := inner["category"].(map[string]interface{})
	assert.Equal(t, "Test Category", categoryRef["name"])
	assert.Equal(t, "/categories/"+categoryID, categoryRef["href"])

	links := wrapper["_links"].(map[string]interface{})
	for _, key := range []string{"self", "collection", "update", "delete", "seller", "category"} {
		assert.Contains(t, links, key)
	}

	// Update touches name/quantity/price only
	resp = doJSON(t, app, http.MethodPut, "/api/products/"+productID, map[string]interface{}{
		"name":     "Updated Product",
		"quantity": 15,
		"price":    200,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, resp)
	assert.Equal(t, "Updated Product", updated["name"])
	assert.Equal(t, float64(15), updated["quantity"])
	assert.Equal(t, float64(200), updated["price"])
	assert.Equal(t, sellerID, updated["seller"])

	// Delete
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Product deleted successfully", body["message"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Product not found", body["message"])
}

func TestProductValidation(t *testing.T) {
	app := setupApp(t)

	// Empty body
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Name, quantity, and price are required", body["message"])

	// Missing price
	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "No Price",
		"quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Name, quantity, and price are required", body["message"])

	// Zero quantity and price are present, so they pass the required check
	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Free Item",
		"quantity": 0,
		"price":    0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Negative price fails the range constraint
	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Bad Price",
		"quantity": 1,
		"price":    -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Validation failed", body["message"])

	// Whitespace-only name trims to empty and counts as missing
	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "   ",
		"quantity": 1,
		"price":    1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Name, quantity, and price are required", body["message"])

	// Negative quantity on update is rejected too
	createResp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Updatable",
		"quantity": 1,
		"price":    1,
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	created := decodeMap(t, createResp)
	productID := created["id"].(string)

	resp = doJSON(t, app, http.MethodPut, "/api/products/"+productID, map[string]interface{}{
		"quantity": -1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestProductFiltering(t *testing.T) {
	app := setupApp(t)

	sellerID := createSeller(t, app, "filter@example.com")
	categoryID := createCategory(t, app)

	mkProduct := func(name string, seller, category string) {
		payload := map[string]interface{}{"name": name, "quantity": 1, "price": 10}
		if seller != "" {
			payload["seller"] = seller
		}
		if category != "" {
			payload["category"] = category
		}
		resp := doJSON(t, app, http.MethodPost, "/api/products", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	mkProduct("Mine", sellerID, "")
	mkProduct("Categorized", "", categoryID)
	mkProduct("Unrelated", "", "")

	// Filter by seller
	resp := doJSON(t, app, http.MethodGet, "/api/products?seller="+sellerID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products := decodeList(t, resp)
	require.Len(t, products, 1)
	assert.Equal(t, "Mine", products[0].(map[string]interface{})["name"])

	// Filter by category
	resp = doJSON(t, app, http.MethodGet, "/api/products?category="+categoryID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products = decodeList(t, resp)
	require.Len(t, products, 1)
	assert.Equal(t, "Categorized", products[0].(map[string]interface{})["name"])

	// No filter returns everything
	resp = doJSON(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products = decodeList(t, resp)
	assert.Len(t, products, 3)

	// A filter matching nothing is an empty array, not an error
	resp = doJSON(t, app, http.MethodGet, "/api/products?seller=65d1234567890abcdef12345", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products = decodeList(t, resp)
	assert.Len(t, products, 0)

	// Arbitrary query keys are not honored as filters
	resp = doJSON(t, app, http.MethodGet, "/api/products?name=Mine", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products = decodeList(t, resp)
	assert.Len(t, products, 3)
}

func TestProductDanglingReferences(t *testing.T) {
	app := setupApp(t)

	// References to entities that never existed are stored as-is
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Orphan",
		"quantity": 2,
		"price":    20,
		"seller":   "65d1234567890abcdef12345",
		"category": "65f5dff06a3e9e72bdfaa123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	productID := created["id"].(string)

	// The detail response drops both unresolved references but still succeeds
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	wrapper := body["product"].(map[string]interface{})
	inner := wrapper["product"].(map[string]interface{})
	assert.Equal(t, "Orphan", inner["name"])
	assert.NotContains(t, inner, "seller")
	assert.NotContains(t, inner, "category")

	links := wrapper["_links"].(map[string]interface{})
	assert.Contains(t, links, "self")
	assert.NotContains(t, links, "seller")
	assert.NotContains(t, links, "category")
}

func TestDeletingSellerLeavesProducts(t *testing.T) {
	app := setupApp(t)

	sellerID := createSeller(t, app, "doomed@example.com")
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Survivor",
		"quantity": 1,
		"price":    10,
		"seller":   sellerID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	productID := created["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/sellers/"+sellerID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// No cascading delete: the product remains, its reference now dangling
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	inner := body["product"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "Survivor", inner["name"])
	assert.NotContains(t, inner, "seller")
}
