package handlers

import (
	"github.com/gin-gonic/gin"

	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/logger"
	"pulsegym/internal/shared/utils"
)

// maxImportSize caps the accepted CSV upload at 10 MiB.
const maxImportSize = 10 << 20

type ImportHandler struct {
	importMembersUC importMembersUseCase
	logger          logger.Interface
}

func NewImportHandler(importMembersUC importMembersUseCase, logger logger.Interface) *ImportHandler {
	return &ImportHandler{
		importMembersUC: importMembersUC,
		logger:          logger,
	}
}

// ImportMembers handles POST /members/import. The request is a multipart
// form with the CSV under the "file" field.
func (h *ImportHandler) ImportMembers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("missing CSV file upload", err.Error()))
		return
	}

	if fileHeader.Size > maxImportSize {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("CSV upload too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded CSV", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	result, err := h.importMembersUC.Execute(c.Request.Context(), file)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
