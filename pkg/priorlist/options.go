package priorlist

import (
	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"
	"go-alloclist/util/logger"

	"github.com/sirupsen/logrus"
)

// Options mirror alloclist.Options.
type Options struct {
	Provider provider.Provider
	Locker   locker.Locker
	Logger   *logrus.Entry
}

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.Provider == nil {
		res.Provider = provider.NewHeap()
	}
	if res.Locker == nil {
		res.Locker = locker.Noop{}
	}
	if res.Logger == nil {
		res.Logger = logger.Component("priorlist")
	}
	return res
}
