// internal/app/features/handbook/handler.go
package handbook

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/drafthub/drafthub/internal/app/features/errors"
	"github.com/drafthub/drafthub/internal/app/store/designdocs"
	"github.com/drafthub/drafthub/internal/app/system/htmlsanitize"
	"github.com/drafthub/drafthub/internal/app/system/normalize"
	"github.com/drafthub/drafthub/internal/app/system/timeouts"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
	"github.com/drafthub/drafthub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the design-document table and inline viewer. All view state
// (filter selections and the selected row) lives in the query string, so the
// page is fully reloadable and shareable.
type Handler struct {
	Log    *zap.Logger
	Docs   *designdocs.Store
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(docs *designdocs.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Docs:   docs,
		ErrLog: uierrors.NewErrorLogger(logger),
	}
}

type docRow struct {
	models.DesignDocument
	Selected  bool
	SelectURL string
}

type pageData struct {
	viewdata.BaseVM

	Empty bool

	ProjectOptions    []string
	CatalogueOptions  []string
	DrawingOptions    []string
	SelectedProject   string
	SelectedCatalogue string
	SelectedDrawing   string

	Rows     []docRow
	RowCount int

	// Viewer state for the selected row, if any.
	HasSelection bool
	ViewingName  string
	Description  template.HTML
	FullScreen   string
	EmbedURL     string
	MissingLink  bool
	LinkError    bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /handbook – filterable table + viewer                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHandbook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Docs.List(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "load design documents", err,
			"The document list could not be loaded. Please try again.", "/")
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Design Handbook", "/"),
	}

	if len(docs) == 0 {
		data.Empty = true
		templates.Render(w, r, "handbook", data)
		return
	}

	q := r.URL.Query()
	sel := Selections{
		Project:   normalize.FilterValue(q.Get("project")),
		Catalogue: normalize.FilterValue(q.Get("catalogue")),
		Drawing:   normalize.FilterValue(q.Get("drawing")),
	}

	res := ApplyFilters(docs, sel)

	data.ProjectOptions = res.ProjectOptions
	data.CatalogueOptions = res.CatalogueOptions
	data.DrawingOptions = res.DrawingOptions
	data.SelectedProject = displayValue(sel.Project)
	data.SelectedCatalogue = displayValue(sel.Catalogue)
	data.SelectedDrawing = displayValue(sel.Drawing)

	// The selected-row index is relative to the filtered view. A stale index
	// (filter changed underneath a bookmarked URL) simply clears the
	// selection instead of pointing at the wrong row.
	selected := parseSelection(q.Get("sel"), len(res.Docs))

	data.Rows = make([]docRow, len(res.Docs))
	for i, d := range res.Docs {
		data.Rows[i] = docRow{
			DesignDocument: d,
			Selected:       i == selected,
			SelectURL:      selectURL(sel, i),
		}
	}
	data.RowCount = len(res.Docs)

	if selected >= 0 {
		h.fillViewer(&data, res.Docs[selected])
	}

	templates.Render(w, r, "handbook", data)
}

func (h *Handler) fillViewer(data *pageData, doc models.DesignDocument) {
	data.HasSelection = true
	data.ViewingName = doc.DrawingName
	data.Description = htmlsanitize.Description(doc.Description)

	if doc.PDFLink == nil || *doc.PDFLink == "" {
		data.MissingLink = true
		return
	}

	vl, err := ResolveViewLink(*doc.PDFLink)
	if err != nil {
		h.Log.Warn("document link rejected",
			zap.Int64("doc_id", doc.ID),
			zap.Error(err))
		data.LinkError = true
		return
	}
	data.FullScreen = vl.FullScreen
	data.EmbedURL = vl.Embed
}

// parseSelection validates a filtered-view row index from the query string.
// Anything unparsable or out of range means "no selection".
func parseSelection(raw string, count int) int {
	raw = normalize.QueryParam(raw)
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n >= count {
		return -1
	}
	return n
}

// selectURL builds the link that selects row i while keeping the current
// filter selections.
func selectURL(sel Selections, i int) string {
	v := url.Values{}
	if sel.Project != "" {
		v.Set("project", sel.Project)
	}
	if sel.Catalogue != "" {
		v.Set("catalogue", sel.Catalogue)
	}
	if sel.Drawing != "" {
		v.Set("drawing", sel.Drawing)
	}
	v.Set("sel", strconv.Itoa(i))
	return "/handbook?" + v.Encode()
}

func displayValue(s string) string {
	if s == "" {
		return AllOption
	}
	return s
}
