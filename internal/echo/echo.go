// Package echo 實作 Keyword Echo Service。
//
// 這是一個無狀態的函式：收到 keyword 後回傳 "<name> says <keyword>."。
// 同一份邏輯可以透過 HTTP (gin) 或 AWS Lambda 部署，主服務的 /say 會代理到這裡。
package echo

import (
	"fmt"
	"net/http"
)

// MissingKeywordMessage keyword 缺少或為空時的固定訊息
const MissingKeywordMessage = "There is no keyword. Please put in a keyword."

// Say 回傳狀態碼與純文字內容
func Say(name, keyword string) (int, string) {
	if keyword == "" {
		return http.StatusBadRequest, MissingKeywordMessage
	}
	return http.StatusOK, fmt.Sprintf("%s says %s.", name, keyword)
}
