package echo

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler 處理 API Gateway 的 proxy 事件
type LambdaHandler struct {
	Name string
}

func (h LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, body := Say(h.Name, req.QueryStringParameters["keyword"])

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "text/plain",
		},
	}, nil
}
