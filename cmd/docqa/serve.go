package main

import (
	docgin "github.com/fwojciec/docqa/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := docgin.NewServer(deps.Answerer, deps.Inspector, deps.Logger)
	return server.ListenAndServe(c.Addr)
}
