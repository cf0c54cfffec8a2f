package news

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer() *Container {
	service := NewDefaultService()
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
