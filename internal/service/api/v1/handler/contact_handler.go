package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/contact"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// ContactResponse 문의 접수 성공 응답입니다.
type ContactResponse struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message" example:"Contact form submitted successfully"`
	Data    *contact.Submission `json:"data"`
}

// ContactErrorResponse 문의 접수 실패 응답입니다. 스토어프런트가 기대하는 형식을 따릅니다.
type ContactErrorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}

// SubmitContact godoc
// @Summary 문의 접수
// @Description 영업 담당자에게 메일을 보내고 WhatsApp 문의 링크를 반환합니다. 메일 발송 실패는 data.emailError로 보고됩니다.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body contact.Request true "문의 내용"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ContactErrorResponse
// @Failure 500 {object} ContactErrorResponse
// @Router /api/v1/contact [post]
func (h *Handler) SubmitContact(c echo.Context) error {
	var req contact.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ContactErrorResponse{Error: constants.ErrMsgContactInvalidBody})
	}

	res, err := h.contact.Submit(c.Request().Context(), req)
	if err != nil {
		if apperrors.Is(err, apperrors.InvalidInput) {
			return c.JSON(http.StatusBadRequest, ContactErrorResponse{Error: messageOf(err)})
		}

		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"remote_ip": c.RealIP(),
			"error":     err,
		}).Error("문의 접수 처리 중 오류가 발생했습니다")
		return c.JSON(http.StatusInternalServerError, ContactErrorResponse{Error: constants.ErrMsgContactSubmitFailed})
	}

	return c.JSON(http.StatusOK, ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Data:    res,
	})
}

// messageOf 에러 체인의 가장 바깥 AppError 메시지를 반환합니다. 원인 에러는 포함하지 않습니다.
func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}
