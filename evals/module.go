package evals

import (
	"github.com/reusee/dscope"
	"github.com/reusee/exprs/configs"
	"github.com/reusee/exprs/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
