package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"pulsegym/internal/application/retention/dto"
	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/logger"
	"pulsegym/internal/shared/utils"
)

type AssessmentHandler struct {
	assessMemberUC    assessMemberUseCase
	listAssessmentsUC listAssessmentsUseCase
	assessRosterUC    assessRosterUseCase
	logger            logger.Interface
}

func NewAssessmentHandler(
	assessMemberUC assessMemberUseCase,
	listAssessmentsUC listAssessmentsUseCase,
	assessRosterUC assessRosterUseCase,
	logger logger.Interface,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessMemberUC:    assessMemberUC,
		listAssessmentsUC: listAssessmentsUC,
		assessRosterUC:    assessRosterUC,
		logger:            logger,
	}
}

// GetMemberAssessment handles GET /members/:id/assessment
func (h *AssessmentHandler) GetMemberAssessment(c *gin.Context) {
	memberID := c.Param("id")
	if memberID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("member ID is required"))
		return
	}

	assessment, err := h.assessMemberUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromAssessment(assessment))
}

// ListAssessments handles GET /assessments
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAssessmentsQuery{
		Level:    c.Query("risk_level"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	assessments, total, err := h.listAssessmentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]dto.AssessmentDTO, 0, len(assessments))
	for i := range assessments {
		items = append(items, dto.FromAssessment(&assessments[i]))
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// RunRosterAssessment handles POST /assessments/run
func (h *AssessmentHandler) RunRosterAssessment(c *gin.Context) {
	assessments, err := h.assessRosterUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]dto.AssessmentDTO, 0, len(assessments))
	for memberID := range assessments {
		assessment := assessments[memberID]
		items = append(items, dto.FromAssessment(&assessment))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].MemberID < items[j].MemberID
	})

	utils.OKResponse(c, items)
}
