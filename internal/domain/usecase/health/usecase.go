package health

type UseCase interface {
	// CheckHealth reports that the service is up. It never calls the weather provider.
	CheckHealth() string
}
