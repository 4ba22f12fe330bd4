package dispatch

type OptionFunc func(*Option)

type Option struct {
	middlewares []Middleware
}

func NewOption(opts ...OptionFunc) *Option {
	option := &Option{}

	for _, opt := range opts {
		opt(option)
	}

	return option
}

// WithMiddleware appends handler decorators. The first one listed is the
// outermost when a message is dispatched.
func WithMiddleware(middlewares ...Middleware) OptionFunc {
	return func(option *Option) {
		for _, mw := range middlewares {
			if mw != nil {
				option.middlewares = append(option.middlewares, mw)
			}
		}
	}
}
