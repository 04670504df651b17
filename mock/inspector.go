package mock

import "github.com/fwojciec/docqa"

var _ docqa.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of docqa.Inspector.
type Inspector struct {
	InspectFn func(data []byte) (int, error)
}

func (i *Inspector) Inspect(data []byte) (int, error) {
	return i.InspectFn(data)
}
