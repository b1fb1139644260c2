package recipe

import (
	"errors"
	"net/http"
	"strings"

	recipeService "recipe-importer/internal/core/recipe"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParseRequest 解析已取得的 HTML 為食譜記錄
type ParseRequest struct {
	HTML      string `json:"html" binding:"required"` // 頁面完整 HTML
	SourceURL string `json:"source_url,omitempty"`    // 來源 URL，用於圖片絕對化與站點規則
	Classify  bool   `json:"classify,omitempty"`      // 是否附上料理分類
}

// ImportRequest 抓取 URL 並解析為食譜記錄
type ImportRequest struct {
	URL      string `json:"url" binding:"required"` // 食譜頁面 URL
	Classify bool   `json:"classify,omitempty"`     // 是否附上料理分類
}

// Handler 食譜處理程序
type Handler struct {
	service *recipeService.Service
}

// NewHandler 創建新的食譜處理程序
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ensureRequestID 取得或補發 X-Request-ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// HandleParse 解析請求體中的 HTML
func (h *Handler) HandleParse(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜解析請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recipe, err := h.service.Parse(c.Request.Context(), req.HTML, req.SourceURL, req.Classify)
	if err != nil {
		h.respondParseError(c, err, requestID)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleImport 抓取 URL 並解析
func (h *Handler) HandleImport(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜匯入請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must be http or https"})
		return
	}

	recipe, err := h.service.Import(c.Request.Context(), req.URL, req.Classify)
	if err != nil {
		h.respondParseError(c, err, requestID)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleClassify 計算已解析食譜的料理分類
func (h *Handler) HandleClassify(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req common.ParsedRecipe
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe title is required"})
		return
	}

	classification := h.service.Classify(&req)
	c.JSON(http.StatusOK, classification)
}

// HandleStats 回傳解析統計
func (h *Handler) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// respondParseError 依錯誤類型決定回應
// 抓取失敗回 502，頁面無可辨識食譜回 422 並列出缺失欄位
func (h *Handler) respondParseError(c *gin.Context, err error, requestID string) {
	var ve *common.ValidationError
	var fe *common.FetchError

	switch {
	case errors.As(err, &ve):
		common.LogWarn("頁面中找不到可辨識的食譜內容",
			zap.Strings("missing_fields", ve.Fields),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "No recognizable recipe found",
			"code":           common.ErrCodeUnprocessable,
			"missing_fields": ve.Fields,
		})
	case errors.As(err, &fe):
		common.LogError("來源頁面抓取失敗",
			zap.String("url", fe.URL),
			zap.Error(fe.Err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch source page",
			"code":  common.ErrCodeBadGateway,
			"url":   fe.URL,
		})
	default:
		common.LogError("食譜解析失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Recipe parsing failed",
			"code":  common.ErrCodeInternalError,
		})
	}
}
