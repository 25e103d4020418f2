package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service         *services.ProductService
	sellerService   *services.SellerService
	categoryService *services.CategoryService
	validate        *validator.Validate
}

// NewProductHandler creates a new ProductHandler. The seller and category
// services resolve a product's weak references in the detail response.
func NewProductHandler(service *services.ProductService, sellerService *services.SellerService, categoryService *services.CategoryService) *ProductHandler {
	return &ProductHandler{
		service:         service,
		sellerService:   sellerService,
		categoryService: categoryService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// entityRef is the projection of a resolved seller or category reference.
type entityRef struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// productDetail inlines a product's fields and replaces the raw seller and
// category id fields with resolved projections. The shadowing of the embedded
// json names means an unresolved reference is omitted from the output rather
// than leaking the dangling id.
type productDetail struct {
	models.Product
	SellerRef   *entityRef `json:"seller,omitempty"`
	CategoryRef *entityRef `json:"category,omitempty"`
}

// createProductRequest is the request body for creating a product. name must
// be present and non-empty after trimming; quantity and price only have to be
// present, so zero values pass the required check but must be non-negative.
type createProductRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Seller   *string  `json:"seller"`
	Category *string  `json:"category"`
}

// updateProductRequest is the request body for updating a product. Only name,
// quantity and price are updatable; seller and category references are fixed
// at creation.
type updateProductRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

// validationErrorResponse formats validator failures as a field -> error map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// HandleGetProducts retrieves products as a bare array, optionally narrowed by
// the seller and category query parameters. Other query keys are ignored.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Seller:   c.Query("seller"),
		Category: c.Query("category"),
	}

	products, err := h.service.GetAllProducts(filter)
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching products",
			"error":   err.Error(),
		})
	}
	if products == nil {
		products = []models.Product{}
	}

	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product, resolving its seller and
// category references independently. A reference that does not resolve is
// dropped from the response; it never fails the request.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching product",
			"error":   err.Error(),
		})
	}

	detail := productDetail{Product: *product}
	links := resourceLinks("products", product.ID)

	if product.Seller != "" {
		seller, err := h.sellerService.GetSellerByID(product.Seller)
		switch {
		case err == nil:
			href := "/sellers/" + seller.ID
			detail.SellerRef = &entityRef{Name: seller.Name, Href: href}
			links["seller"] = Link{Href: href}
		case !errors.Is(err, repositories.ErrNotFound):
			log.Printf("Error resolving seller %s for product %s: %v", product.Seller, productID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching product",
				"error":   err.Error(),
			})
		}
	}

	if product.Category != "" {
		category, err := h.categoryService.GetCategoryByID(product.Category)
		switch {
		case err == nil:
			href := "/categories/" + category.ID
			detail.CategoryRef = &entityRef{Name: category.Name, Href: href}
			links["category"] = Link{Href: href}
		case !errors.Is(err, repositories.ErrNotFound):
			log.Printf("Error resolving category %s for product %s: %v", product.Category, productID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching product",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"product": fiber.Map{
			"product": detail,
			"_links":  links,
		},
	})
}

// HandleCreateProduct creates a new product. Seller and category references
// are accepted as given; they are weak and never checked against the other
// collections.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.Name == nil || *req.Name == "" || req.Quantity == nil || req.Price == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, quantity, and price are required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := models.Product{
		Name:     *req.Name,
		Quantity: *req.Quantity,
		Price:    *req.Price,
	}
	if req.Seller != nil {
		product.Seller = *req.Seller
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to name, quantity and price;
// any field present in the body is re-checked against the creation constraints.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product, err := h.service.UpdateProduct(productID, repositories.ProductUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct removes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.service.DeleteProduct(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
