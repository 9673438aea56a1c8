// Command echo-lambda 將 Keyword Echo Service 部署為 AWS Lambda (API Gateway proxy)
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"catalog_api/internal/echo"
	"catalog_api/pkg/config"
	"catalog_api/pkg/logger"
)

// newLambdaHandler 從 config.yaml 或 CATALOG_ECHO_NAME 取得回覆用的名字
func newLambdaHandler(paths ...string) (echo.LambdaHandler, error) {
	cfg, err := config.Load(paths...)
	if err != nil {
		return echo.LambdaHandler{}, fmt.Errorf("failed to load config: %w", err)
	}
	return echo.LambdaHandler{Name: cfg.Echo.Name}, nil
}

func main() {
	handler, err := newLambdaHandler()
	if err != nil {
		logger.New("info", "json").Error("failed to start echo lambda", "error", err)
		os.Exit(1)
	}

	lambda.Start(handler.Handle)
}
