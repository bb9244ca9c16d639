package engine

type Option func(*Engine)

func WithDivision(division Division) Option {
	return func(e *Engine) {
		e.division = division
	}
}
