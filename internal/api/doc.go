// Package api 處理 HTTP 請求路由和處理。
//
// 路由集中定義在一張表中，啟動時若發現重複的 method+path 會直接回傳錯誤，
// 不會讓後註冊的 handler 悄悄蓋掉先註冊的。
package api
