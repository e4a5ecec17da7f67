package handlers

import (
	"errors"
	"strconv"

	"nexum-supply/internal/core/domain"
	"nexum-supply/internal/core/services"
	"nexum-supply/internal/pkg/pagination"
	"nexum-supply/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product management endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles product creation (Manager or Admin)
// @Summary Create product
// @Description Create a new inventory product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateProductInput true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input services.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.CreateProduct(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeRequired):
			return response.BadRequest(c, "Product code is required")
		case errors.Is(err, domain.ErrInvalidABC):
			return response.BadRequest(c, "Invalid ABC classification, use A, B or C")
		case errors.Is(err, domain.ErrInvalidType):
			return response.BadRequest(c, "Invalid type, use 10, 19 or 20")
		case errors.Is(err, domain.ErrDuplicateCode):
			return response.Conflict(c, "Product code already registered")
		default:
			return response.InternalServerError(c, "Failed to create product")
		}
	}

	return response.Created(c, "Product created successfully", fiber.Map{
		"product": product,
	})
}

// List handles listing products with filters
// @Summary List products
// @Description Get a paginated list of products; supports abc, type, out_of_stock and critical filters
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param abc query string false "ABC classification filter"
// @Param type query int false "Type filter"
// @Param out_of_stock query bool false "Only products with zero balance"
// @Param critical query bool false "Only critical products"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListProductsInput{
		ABC:        c.Query("abc"),
		OutOfStock: c.QueryBool("out_of_stock"),
		Critical:   c.QueryBool("critical"),
		Page:       params.Page,
		Limit:      params.Limit,
	}

	if raw := c.Query("type"); raw != "" {
		t, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid type filter")
		}
		input.Type = &t
	}

	result, err := h.productService.ListProducts(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", result)
}

// Get handles getting a product by ID
// @Summary Get product by ID
// @Description Get a product with derived criticality and purchase need
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.productService.GetProductByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to get product")
	}

	return response.Success(c, "Product retrieved successfully", fiber.Map{
		"product": product,
	})
}

// GetByCode handles getting a product by business code
// @Summary Get product by code
// @Description Get a product by its unique business code
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Product code"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/code/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return response.BadRequest(c, "Product code is required")
	}

	product, err := h.productService.GetProductByCode(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to get product")
	}

	return response.Success(c, "Product retrieved successfully", fiber.Map{
		"product": product,
	})
}

// Update handles updating a product (Manager or Admin)
// @Summary Update product
// @Description Partially update a product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.UpdateProductInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.UpdateProduct(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, domain.ErrCodeRequired):
			return response.BadRequest(c, "Product code cannot be empty")
		case errors.Is(err, domain.ErrInvalidABC):
			return response.BadRequest(c, "Invalid ABC classification, use A, B or C")
		case errors.Is(err, domain.ErrInvalidType):
			return response.BadRequest(c, "Invalid type, use 10, 19 or 20")
		case errors.Is(err, domain.ErrDuplicateCode):
			return response.Conflict(c, "Product code already registered")
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated successfully", fiber.Map{
		"product": product,
	})
}

// Delete handles deleting a product (Admin only)
// @Summary Delete product
// @Description Soft delete a product (Admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.productService.DeleteProduct(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}

	return response.Success(c, "Product deleted successfully", nil)
}
