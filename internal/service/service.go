package service

import (
	"catalog_api/internal/repository"
	"catalog_api/pkg/config"
)

type Services struct {
	FoodService    *FoodService
	CompanyService *CompanyService
	StudentService *StudentService
	EchoClient     *EchoClient
}

func NewServices(repos *repository.Repositories, echoCfg config.EchoConfig) *Services {
	return &Services{
		FoodService:    NewFoodService(repos.Food),
		CompanyService: NewCompanyService(repos.Company),
		StudentService: NewStudentService(repos.Student),
		EchoClient:     NewEchoClient(echoCfg.URL, echoCfg.Timeout),
	}
}
