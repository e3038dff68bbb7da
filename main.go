package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/abhinav-rai/pathcraft/internal/container"
	"github.com/abhinav-rai/pathcraft/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:   c.UserContainer.Handler,
		CourseHandler: c.CourseContainer.Handler,
		TopicHandler:  c.TopicContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is listening on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
