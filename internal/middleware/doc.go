// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含請求 ID 與請求日誌兩個中間件，
// 主服務與 Keyword Echo Service 共用。
package middleware
