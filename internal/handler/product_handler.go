package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"product-api/internal/model"
	"product-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Response messages for the mutating routes.
const (
	MsgProductNotFound = "product not found"
	MsgProductUpdated  = "product updated successfully"
	MsgProductDeleted  = "product deleted successfully"
)

type productIDKey struct{}

// productRequest is the wire shape of a ProductInput. Pointers let the
// validator tell a missing field apart from a zero value.
type productRequest struct {
	Name     *string  `json:"name" validate:"required"`
	Details  *string  `json:"details" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Stock    *int32   `json:"stock" validate:"required"`
	Image    *string  `json:"image" validate:"required"`
	Category *string  `json:"category" validate:"required"`
}

func (r productRequest) toInput() model.ProductInput {
	return model.ProductInput{
		Name:     *r.Name,
		Details:  *r.Details,
		Price:    *r.Price,
		Stock:    *r.Stock,
		Image:    *r.Image,
		Category: *r.Category,
	}
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// ProductCtx parses the {id} URL parameter as a UUID and stores it in the
// request context. Malformed identifiers are answered with 400 before the
// wrapped handler runs.
func (h *ProductHandler) ProductCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := uuid.Parse(raw)
		if err != nil {
			writeBadRequest(w, model.ErrCodeInvalidID, "invalid product ID: "+raw, nil, h.requestLogger(r))
			return
		}

		ctx := context.WithValue(r.Context(), productIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	products, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, products, logger)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	id := productID(r)

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, product, logger)
}

// Create handles POST /products. The response body echoes the submitted
// record; the generated ID is only exposed through the Location header.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	in, ok := h.decodeInput(w, r, logger)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeInternalError(w, err, logger)
		return
	}

	w.Header().Set("Location", "/products/"+id.String())
	writeJSON(w, http.StatusCreated, in, logger)
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	id := productID(r)

	in, ok := h.decodeInput(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, in); err != nil {
		h.writeLookupError(w, err, logger)
		return
	}

	writeMessage(w, http.StatusOK, MsgProductUpdated, logger)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)
	id := productID(r)

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, err, logger)
		return
	}

	writeMessage(w, http.StatusOK, MsgProductDeleted, logger)
}

// decodeInput reads a complete ProductInput from the body, answering 400 on failure.
func (h *ProductHandler) decodeInput(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (model.ProductInput, bool) {
	var req productRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "invalid request body: "+err.Error(), nil, logger)
		return model.ProductInput{}, false
	}
	// The body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "invalid request body: unexpected data after JSON object", nil, logger)
		return model.ProductInput{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields[jsonFieldName(fieldErr.Field())] = "failed on rule: " + fieldErr.Tag()
			}
			writeBadRequest(w, model.ErrCodeMissingField, "missing required fields", fields, logger)
			return model.ProductInput{}, false
		}
		writeBadRequest(w, model.ErrCodeInvalidJSON, "invalid request body", nil, logger)
		return model.ProductInput{}, false
	}

	return req.toInput(), true
}

// writeLookupError maps a single-row failure: confirmed absence is 404, anything else 500.
func (h *ProductHandler) writeLookupError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if errors.Is(err, model.ErrProductNotFound) {
		writeMessage(w, http.StatusNotFound, MsgProductNotFound, logger)
		return
	}
	writeInternalError(w, err, logger)
}

func (h *ProductHandler) requestLogger(r *http.Request) zerolog.Logger {
	return h.logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
}

// productID returns the identifier stored by ProductCtx.
func productID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(productIDKey{}).(uuid.UUID)
	return id
}

func jsonFieldName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Details":
		return "details"
	case "Price":
		return "price"
	case "Stock":
		return "stock"
	case "Image":
		return "image"
	case "Category":
		return "category"
	default:
		return field
	}
}
