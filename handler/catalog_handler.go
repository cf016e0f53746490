package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/dto"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListScholarships handles GET /scholarships with optional state, category
// and min_amount query filters.
func (h *CatalogHandler) ListScholarships(c *gin.Context) {
	filter := catalog.Filter{
		State:    c.Query("state"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_amount"); raw != "" {
		minAmount, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "INVALID_QUERY",
				Message: "min_amount must be an integer",
				Code:    http.StatusBadRequest,
			})
			return
		}
		filter.MinAmount = minAmount
	}

	scholarships := h.catalog.Filtered(filter)
	c.JSON(http.StatusOK, dto.ScholarshipListResponse{
		Success:      true,
		Scholarships: scholarships,
		Total:        len(scholarships),
	})
}

// ListExams handles GET /exams.
func (h *CatalogHandler) ListExams(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExamListResponse{
		Success: true,
		Exams:   h.catalog.Exams(),
	})
}

var guidanceContent = map[string]dto.GuidanceContent{
	"documents": {
		Title: "Required Documents Checklist",
		Content: `Academic documents: latest marksheet (attested), previous year
marksheet, school/college ID card, admission letter for new students.

Income proof (choose one): income certificate from Tehsildar, ITR, or salary
slips for the last 6 months.

Category certificate: SC/ST certificate, OBC certificate (valid 1 year),
minority certificate.

Identity proof: Aadhaar card (mandatory), bank passbook, passport size photo.`,
	},
	"interview": {
		Title: "Interview Preparation Guide",
		Content: `Common questions: tell me about yourself; why do you need this
scholarship; what are your future goals; how will you utilise it.

Carry all original certificates, two sets of photocopies, and a printout of
the application form.

Dress formally, reach 15 minutes early, be confident and honest, and speak
clearly.`,
	},
}

// ApplicationGuidance handles GET /application-guidance?type=documents|interview.
// Unknown types fall back to the documents checklist.
func (h *CatalogHandler) ApplicationGuidance(c *gin.Context) {
	guidanceType := c.DefaultQuery("type", "documents")
	guidance, ok := guidanceContent[guidanceType]
	if !ok {
		guidance = guidanceContent["documents"]
	}

	c.JSON(http.StatusOK, dto.GuidanceResponse{
		Success:  true,
		Guidance: guidance,
	})
}
