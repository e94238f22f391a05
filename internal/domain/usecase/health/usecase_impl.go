package health

// StatusMessage is the body served by the health endpoint
const StatusMessage = "Weather Service is running!"

type healthUseCase struct{}

func NewHealthUseCase() UseCase {
	return &healthUseCase{}
}

func (useCase *healthUseCase) CheckHealth() string {
	return StatusMessage
}
