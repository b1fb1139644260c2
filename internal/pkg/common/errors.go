package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示食譜草稿未通過驗證
// Fields 記錄缺失或清理後為空的欄位名稱，呼叫端據此回報具體錯誤
type ValidationError struct {
	Fields []string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return fmt.Sprintf("recipe validation failed: missing or empty fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FetchError 表示頁面抓取失敗（網路或逾時）
// 必須與 ValidationError 區分：「頁面連不上」和「頁面連得上但不是食譜」要分開回報
type FetchError struct {
	URL string
	Err error
}

// Error 實現 error 介面
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

// Unwrap 回傳原始錯誤
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError 創建新的抓取錯誤
func NewFetchError(url string, err error) error {
	return &FetchError{URL: url, Err: err}
}

// IsFetchError 檢查是否為抓取錯誤
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeUnprocessable    = "UNPROCESSABLE"      // 422
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeBadGateway         = "BAD_GATEWAY"         // 502
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrNotARecipe    = NewError("NOT_A_RECIPE", "頁面中找不到可辨識的食譜內容", http.StatusUnprocessableEntity, nil)
	ErrCacheFull     = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrFetchFailed   = NewError("FETCH_FAILED", "無法取得來源頁面", http.StatusBadGateway, nil)
)
