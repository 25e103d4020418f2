package handlers

import (
	"errors"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles HTTP requests for sellers.
type SellerHandler struct {
	service        *services.SellerService
	productService *services.ProductService
	validate       *validator.Validate
}

// NewSellerHandler creates a new SellerHandler. The product service is used to
// embed a seller's products into its detail response.
func NewSellerHandler(service *services.SellerService, productService *services.ProductService) *SellerHandler {
	return &SellerHandler{
		service:        service,
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the seller routes with the Fiber app.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/sellers")
	sellerRoutes.Get("/", h.HandleGetSellers)
	sellerRoutes.Get("/:id", h.HandleGetSellerByID)
	sellerRoutes.Post("/", h.HandleCreateSeller)
	sellerRoutes.Put("/:id", h.HandleUpdateSeller)
	sellerRoutes.Delete("/:id", h.HandleDeleteSeller)
}

// sellerResource is a seller with its navigation links inlined.
type sellerResource struct {
	models.Seller
	Links map[string]interface{} `json:"_links"`
}

// productSummary is the projection of a product embedded in a seller response.
type productSummary struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Href     string  `json:"href"`
}

// sellerRequest is the request body for creating or updating a seller.
// Pointer fields distinguish absent keys from explicit empty strings: name
// must be present and non-empty, while email and location only have to be
// present, so an empty email still passes the create check.
type sellerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// HandleGetSellers retrieves all sellers, each with a link set plus a pointer
// to its filtered product listing. An empty collection is a 200, not an error.
func (h *SellerHandler) HandleGetSellers(c *fiber.Ctx) error {
	sellers, err := h.service.GetAllSellers()
	if err != nil {
		log.Printf("Error getting all sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching sellers",
			"error":   err.Error(),
		})
	}

	resources := make([]sellerResource, 0, len(sellers))
	for _, seller := range sellers {
		links := resourceLinks("sellers", seller.ID)
		links["products"] = Link{Href: "/products?seller=" + seller.ID}
		resources = append(resources, sellerResource{Seller: seller, Links: links})
	}

	return c.JSON(fiber.Map{"sellers": resources})
}

// HandleGetSellerByID retrieves a single seller and embeds a projection of
// every product referencing it.
func (h *SellerHandler) HandleGetSellerByID(c *fiber.Ctx) error {
	sellerID := c.Params("id")
	seller, err := h.service.GetSellerByID(sellerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Seller not found",
			})
		}
		log.Printf("Error getting seller by ID %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching seller",
			"error":   err.Error(),
		})
	}

	products, err := h.productService.GetAllProducts(repositories.ProductFilter{Seller: seller.ID})
	if err != nil {
		log.Printf("Error getting products for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching seller",
			"error":   err.Error(),
		})
	}

	links := resourceLinks("sellers", seller.ID)
	if len(products) > 0 {
		summaries := make([]productSummary, 0, len(products))
		for _, p := range products {
			summaries = append(summaries, productSummary{
				Name:     p.Name,
				Price:    p.Price,
				Quantity: p.Quantity,
				Href:     "/products?seller=" + seller.ID,
			})
		}
		links["products"] = summaries
	}

	return c.JSON(fiber.Map{
		"seller": sellerResource{Seller: *seller, Links: links},
	})
}

// HandleCreateSeller creates a new seller.
func (h *SellerHandler) HandleCreateSeller(c *fiber.Ctx) error {
	var req sellerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create seller request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == nil || *req.Name == "" || req.Email == nil || req.Location == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, email, and location are required",
		})
	}

	seller := models.Seller{
		Name:     *req.Name,
		Email:    *req.Email,
		Location: *req.Location,
	}
	if req.Phone != nil {
		seller.Phone = *req.Phone
	}

	if err := h.service.CreateSeller(&seller); err != nil {
		log.Printf("Error creating seller: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating seller",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(seller)
}

// HandleUpdateSeller applies a partial update; fields absent from the body are
// left as they are, and fields that are present are re-checked against the
// creation constraints.
func (h *SellerHandler) HandleUpdateSeller(c *fiber.Ctx) error {
	sellerID := c.Params("id")

	var req sellerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update seller request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	seller, err := h.service.UpdateSeller(sellerID, repositories.SellerUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Seller not found",
			})
		}
		log.Printf("Error updating seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating seller",
			"error":   err.Error(),
		})
	}

	return c.JSON(seller)
}

// HandleDeleteSeller removes a seller by its ID.
func (h *SellerHandler) HandleDeleteSeller(c *fiber.Ctx) error {
	sellerID := c.Params("id")

	if err := h.service.DeleteSeller(sellerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Seller not found",
			})
		}
		log.Printf("Error deleting seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting seller",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Seller deleted successfully"})
}
