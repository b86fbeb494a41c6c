package v1handler

import (
	"cordely/internal/catalog"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
	"net/http"

	"github.com/google/uuid"
)

// ListProducts returns the site's live products in menu order.
func (h Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.deps.Catalog.Products(r.Context(), r.PathValue("siteKey"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": products})
}

// CreateProduct stores a new product at the end of the menu.
func (h Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string           `json:"name"`
		Price       int64            `json:"price"`
		TaxIncluded bool             `json:"taxIncluded"`
		ImageURI    string           `json:"imageUri"`
		Description string           `json:"description"`
		SectionID   domain.SectionID `json:"sectionId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.CreateProduct(r.Context(), r.PathValue("siteKey"), catalog.ProductDraft{
		Name:        req.Name,
		Price:       req.Price,
		TaxIncluded: req.TaxIncluded,
		ImageURI:    req.ImageURI,
		Description: req.Description,
		SectionID:   req.SectionID,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// DescribeProduct generates menu copy for a product from its title and a
// handful of keywords.
func (h Handler) DescribeProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string   `json:"title"`
		Keywords []string `json:"keywords"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	description, err := h.deps.Catalog.DescribeProduct(r.Context(), req.Title, req.Keywords)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"description": description})
}

// UpdateProduct applies a partial update to a product.
func (h Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product id"))

		return
	}

	var req struct {
		Name        *string           `json:"name"`
		Price       *int64            `json:"price"`
		TaxIncluded *bool             `json:"taxIncluded"`
		ImageURI    *string           `json:"imageUri"`
		Description *string           `json:"description"`
		SoldOut     *bool             `json:"soldOut"`
		SortIndex   *int              `json:"sortIndex"`
		SectionID   *domain.SectionID `json:"sectionId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.UpdateProduct(r.Context(),
		r.PathValue("siteKey"),
		domain.ProductID(id),
		storage.ProductUpdates{
			Name:        req.Name,
			Price:       req.Price,
			TaxIncluded: req.TaxIncluded,
			ImageURI:    req.ImageURI,
			Description: req.Description,
			SoldOut:     req.SoldOut,
			SortIndex:   req.SortIndex,
			SectionID:   req.SectionID,
		})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product from the menu.
func (h Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product id"))

		return
	}

	if err := h.deps.Catalog.DeleteProduct(r.Context(), r.PathValue("siteKey"), domain.ProductID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderProducts persists a drag-reorder of the menu.
func (h Handler) ReorderProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []domain.ProductID `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.ReorderProducts(r.Context(), r.PathValue("siteKey"), req.IDs); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSections returns the site's live sections in layout order.
func (h Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.deps.Catalog.Sections(r.Context(), r.PathValue("siteKey"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": sections})
}

// CreateSection stores a new section at the end of the layout.
func (h Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	section, err := h.deps.Catalog.CreateSection(r.Context(), r.PathValue("siteKey"), req.Name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, section)
}

// DeleteSection removes a section; its products fall back to the unsectioned
// part of the menu.
func (h Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid section id"))

		return
	}

	if err := h.deps.Catalog.DeleteSection(r.Context(), r.PathValue("siteKey"), domain.SectionID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderSections persists a drag-reorder of the section layout.
func (h Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []domain.SectionID `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.ReorderSections(r.Context(), r.PathValue("siteKey"), req.IDs); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
