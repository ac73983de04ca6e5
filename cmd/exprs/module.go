package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/exprs/evals"
	"github.com/reusee/exprs/starlarks"
)

type Module struct {
	dscope.Module
	Evals     evals.Module
	Starlarks starlarks.Module
}
