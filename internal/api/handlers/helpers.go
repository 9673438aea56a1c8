package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"catalog_api/internal/storage"
)

const (
	internalErrorMessage = "There is an internal server error"
	busyMessage          = "The database is busy, please retry"
)

// writeRows 以 3 個空白縮排輸出 JSON 陣列
func writeRows(c *gin.Context, log *slog.Logger, rows interface{}) {
	body, err := json.MarshalIndent(rows, "", "   ")
	if err != nil {
		log.Error("failed to encode rows", "path", c.FullPath(), "error", err)
		c.String(http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// writeStoreError 記錄資料庫錯誤並回傳 500，連線池逾時回傳 503
func writeStoreError(c *gin.Context, log *slog.Logger, msg string, err error) {
	log.Error(msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	_ = c.Error(err)

	if errors.Is(err, storage.ErrAcquireTimeout) {
		c.String(http.StatusServiceUnavailable, busyMessage)
		return
	}
	c.String(http.StatusInternalServerError, internalErrorMessage)
}

var registerTagNameOnce sync.Once

// RegisterFieldNames 讓驗證錯誤使用表單欄位名稱 (例如 ITEM_ID) 而不是 struct 欄位名稱
func RegisterFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// bindInput 只檢查必填欄位是否存在，不檢查型別或內容
func bindInput(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBind(input); err != nil {
		c.String(http.StatusBadRequest, bindErrorMessage(err))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Sprintf("Missing required field(s): %s", strings.Join(fields, ", "))
	}
	return "Invalid request body"
}
