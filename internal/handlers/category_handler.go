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

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// categoryResource is a category with its navigation links inlined.
type categoryResource struct {
	models.Category
	Links map[string]interface{} `json:"_links"`
}

// categoryRequest is the request body for creating or updating a category.
// name must be present and non-empty; description only has to be present, so
// an empty description passes the create check.
type categoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// categoryLinks is the link set for one category: the standard four entries
// plus a pointer to its filtered product listing. Unlike sellers, categories
// never embed the product list itself, only the href.
func categoryLinks(id string) map[string]interface{} {
	links := resourceLinks("categories", id)
	links["products"] = Link{Href: "/products?category=" + id}
	return links
}

// HandleGetCategories retrieves all categories with their link sets. An empty
// collection is a 200, not an error.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching categories",
			"error":   err.Error(),
		})
	}

	resources := make([]categoryResource, 0, len(categories))
	for _, category := range categories {
		resources = append(resources, categoryResource{
			Category: category,
			Links:    categoryLinks(category.ID),
		})
	}

	return c.JSON(fiber.Map{"categories": resources})
}

// HandleGetCategoryByID retrieves a single category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error getting category by ID %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching category",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"category": categoryResource{Category: *category, Links: categoryLinks(category.ID)},
	})
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == nil || *req.Name == "" || req.Description == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, and description are required",
		})
	}

	category := models.Category{
		Name:        *req.Name,
		Description: *req.Description,
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating category",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial update; fields absent from the body
// are left as they are, and fields that are present are re-checked against
// the creation constraints.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	category, err := h.service.UpdateCategory(categoryID, repositories.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error updating category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating category",
			"error":   err.Error(),
		})
	}

	return c.JSON(category)
}

// HandleDeleteCategory removes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.service.DeleteCategory(categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting category",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
