package calendar

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer() *Container {
	service := NewService()
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
