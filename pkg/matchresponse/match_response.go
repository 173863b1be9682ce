package matchresponse

import (
	"errors"
	"math"
	"net/http"

	"github.com/DhavalSuthar-24/crease/pkg/validator"
	"github.com/gin-gonic/gin"
	playground "github.com/go-playground/validator/v10"
)

type jsonSuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type jsonErrorResponse struct {
	Status  string      `json:"status"` // "error" or "fail"
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Errors  interface{} `json:"errors,omitempty"`
}

type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// ErrorResponse aborts with the standard error envelope. Server failures are
// reported as "fail", client errors as "error".
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail"
	}
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// ValidationErrorResponse reports a failed ShouldBindJSON. Field rule
// failures become 422 with a per-field map; malformed bodies are 400.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve playground.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusUnprocessableEntity,
			Errors:  validator.ParseError(ve),
		})
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse wraps data in the success envelope. A gin.H carrying a
// string "message" has it lifted to the top level.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{Status: "success"}

	gh, ok := responseData.(gin.H)
	msg, isStr := gh["message"].(string)
	switch {
	case ok && isStr:
		payload.Message = msg
		rest := make(gin.H, len(gh))
		for k, v := range gh {
			if k != "message" {
				rest[k] = v
			}
		}
		if len(rest) > 0 {
			payload.Data = rest
		}
	case responseData != nil:
		payload.Data = responseData
	}
	c.JSON(statusCode, payload)
}

// PaginatedResponse sends one page of items with its position in the set.
func PaginatedResponse(c *gin.Context, statusCode int, itemsData interface{}, currentPage int, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	p := pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > 1 && currentPage <= totalPages,
	}
	if p.HasNextPage {
		next := currentPage + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := currentPage - 1
		p.PreviousPage = &prev
	}
	c.JSON(statusCode, jsonPaginatedResponse{Status: "success", Data: itemsData, Pagination: p})
}
