package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/descriptions"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Machines     machines.Module
	Descriptions descriptions.Module
	Debugs       debugs.Module
	Configs      tmconfigs.Module
}
