// internal/domain/models/designdoc.go
package models

// DesignDocument is one row of the design handbook. The collection is
// read-only from this application; records are loaded by an external import
// pipeline and ordered by the ordinal ID field.
//
// Catalogue and PDFLink are pointers because the source data genuinely has
// nulls in both columns: uncatalogued drawings and rows whose scan has not
// been uploaded yet.
type DesignDocument struct {
	ID          int64   `bson:"id" json:"id"`
	ProjectName string  `bson:"project_name" json:"project_name"`
	Catalogue   *string `bson:"catalogue,omitempty" json:"catalogue,omitempty"`
	DrawingName string  `bson:"drawing_name" json:"drawing_name"`
	Sheet       string  `bson:"sheet,omitempty" json:"sheet,omitempty"`
	Revision    string  `bson:"revision,omitempty" json:"revision,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	PDFLink     *string `bson:"pdf_link,omitempty" json:"pdf_link,omitempty"`
}

// DefaultSiteName is used when no site_name is configured.
const DefaultSiteName = "Design Handbook"
