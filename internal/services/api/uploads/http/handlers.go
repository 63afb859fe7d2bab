// Package http provides http transport for uploads
package http

import (
	"bytes"
	"errors"
	"io"
	stdhttp "net/http"
	"strings"

	"stockboard/internal/modkit/httpkit"
	perr "stockboard/internal/platform/errors"
	"stockboard/internal/services/api/uploads/domain"
	svc "stockboard/internal/services/api/uploads/service"
)

// DefaultMaxUploadBytes caps an uploaded file when no limit is configured
const DefaultMaxUploadBytes int64 = 10 << 20

// view bodies are tiny, unknown fields are a client bug
var viewOpts = httpkit.JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true, AllowEmptyBody: true}

// Register mounts uploads endpoints on the given router
func Register(r httpkit.Router, s svc.Service, maxUploadBytes int64) {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	h := &handlers{svc: s, max: maxUploadBytes}

	// store
	httpkit.GetJSON(r, "/", h.list)
	httpkit.Post(r, "/", h.ingest)
	httpkit.DeleteJSON(r, "/", h.clearAll)
	httpkit.DeleteJSON(r, "/last", h.removeLast)
	httpkit.Post(r, "/reset", h.hardReset)

	// views
	httpkit.PostJSON[domain.ViewInput](r, "/totals", h.totals, viewOpts)
	httpkit.PostJSON[domain.ViewInput](r, "/categories", h.categories, viewOpts)
	httpkit.PostJSON[domain.ViewInput](r, "/units", h.units, viewOpts)
	httpkit.PostJSON[domain.ProductsInput](r, "/products", h.products, viewOpts)
	httpkit.PostJSON[domain.ProductsInput](r, "/summary", h.summary, viewOpts)
	httpkit.PostJSON[domain.PaletteInput](r, "/palette", h.palette, viewOpts)

	httpkit.GetJSON(r, "/{ref}", h.get)
}

type handlers struct {
	svc svc.Service
	max int64
}

// swagger:route GET /uploads Uploads uploadsList
// @Summary List uploads in upload order
// @Tags Uploads
// @Produce json
// @Success 200 {array} domain.Info "ok"
// @Router /uploads [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /uploads/{ref} Uploads uploadsGet
// @Summary One upload with its rows, by id or tipo
// @Tags Uploads
// @Produce json
// @Param ref path string true "upload id or tipo"
// @Success 200 {object} domain.Upload "ok"
// @Router /uploads/{ref} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "ref"))
}

// swagger:route POST /uploads Uploads uploadsIngest
// @Summary Ingest a CSV file
// @Description multipart field "file", or a raw text/csv body named by ?file_name=
// @Tags Uploads
// @Accept multipart/form-data,text/csv
// @Produce json
// @Success 201 {object} domain.Upload "created"
// @Failure 400 {object} ErrorResponse "unparseable file"
// @Failure 409 {object} ErrorResponse "duplicate type"
// @Failure 422 {object} ErrorResponse "empty or unrecognized batch"
// @Router /uploads [post]
func (h *handlers) ingest(r *stdhttp.Request) (any, error) {
	name, data, err := h.file(r)
	if err != nil {
		return nil, err
	}
	u, err := h.svc.Ingest(r.Context(), name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return httpkit.Created(u), nil
}

// swagger:route DELETE /uploads/last Uploads uploadsRemoveLast
// @Summary Remove the most recent upload
// @Tags Uploads
// @Produce json
// @Success 200 {object} domain.MutationResult "ok"
// @Router /uploads/last [delete]
func (h *handlers) removeLast(r *stdhttp.Request) (any, error) {
	return h.svc.RemoveLast(r.Context(), domain.Proceed)
}

// swagger:route DELETE /uploads Uploads uploadsClear
// @Summary Remove every upload
// @Tags Uploads
// @Produce json
// @Success 200 {object} domain.MutationResult "ok"
// @Router /uploads [delete]
func (h *handlers) clearAll(r *stdhttp.Request) (any, error) {
	return h.svc.ClearAll(r.Context(), domain.Proceed)
}

// swagger:route POST /uploads/reset Uploads uploadsReset
// @Summary Clear uploads and delete the persisted document
// @Tags Uploads
// @Produce json
// @Success 200 {object} domain.MutationResult "ok"
// @Router /uploads/reset [post]
func (h *handlers) hardReset(r *stdhttp.Request) (any, error) {
	return h.svc.HardReset(r.Context())
}

// swagger:route POST /uploads/totals Uploads uploadsTotals
// @Summary Quantity totals per unit
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.ViewInput false "Upload"
// @Success 200 {array} aggregate.UnitTotal "ok"
// @Router /uploads/totals [post]
func (h *handlers) totals(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	return h.svc.Totals(r.Context(), in)
}

// swagger:route POST /uploads/categories Uploads uploadsCategories
// @Summary Row count per category, empty when the upload has no categories
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.ViewInput false "Upload"
// @Success 200 {array} aggregate.CategoryCount "ok"
// @Router /uploads/categories [post]
func (h *handlers) categories(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	return h.svc.Categories(r.Context(), in)
}

// swagger:route POST /uploads/units Uploads uploadsUnits
// @Summary Selectable units of an upload
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.ViewInput false "Upload"
// @Success 200 {array} string "ok"
// @Router /uploads/units [post]
func (h *handlers) units(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	return h.svc.Units(r.Context(), in)
}

// swagger:route POST /uploads/products Uploads uploadsProducts
// @Summary Quantity per product for one unit
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.ProductsInput false "Upload and unit"
// @Success 200 {array} aggregate.ProductTotal "ok"
// @Router /uploads/products [post]
func (h *handlers) products(r *stdhttp.Request, in domain.ProductsInput) (any, error) {
	return h.svc.Products(r.Context(), in)
}

// swagger:route POST /uploads/summary Uploads uploadsSummary
// @Summary Every view of one upload
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.ProductsInput false "Upload and unit"
// @Success 200 {object} domain.Summary "ok"
// @Router /uploads/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.ProductsInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

// swagger:route POST /uploads/palette Uploads uploadsPalette
// @Summary Chart colors
// @Tags Uploads
// @Accept json
// @Produce json
// @Param payload body domain.PaletteInput false "Color count"
// @Success 200 {array} string "ok"
// @Router /uploads/palette [post]
func (h *handlers) palette(r *stdhttp.Request, in domain.PaletteInput) (any, error) {
	return h.svc.Palette(r.Context(), in)
}

// file reads the upload body, either a multipart part or the raw request body
func (h *handlers) file(r *stdhttp.Request) (string, []byte, error) {
	r.Body = stdhttp.MaxBytesReader(nil, r.Body, h.max)
	name := strings.TrimSpace(r.URL.Query().Get("file_name"))

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		part, hdr, err := r.FormFile("file")
		if err != nil {
			if tooLarge(err) {
				return "", nil, h.tooLarge()
			}
			return "", nil, perr.WithField(perr.InvalidArgf("multipart field %q with a CSV file is required", "file"), "file")
		}
		defer part.Close()
		if hdr.Filename != "" {
			name = hdr.Filename
		}
		src = part
	}

	data, err := io.ReadAll(src)
	if err != nil {
		if tooLarge(err) {
			return "", nil, h.tooLarge()
		}
		return "", nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "could not read upload body")
	}
	return name, data, nil
}

func (h *handlers) tooLarge() error {
	return perr.WithField(perr.InvalidArgf("file is larger than %d bytes", h.max), "file")
}

func tooLarge(err error) bool {
	var mbe *stdhttp.MaxBytesError
	return errors.As(err, &mbe)
}
