package alloclist

import (
	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"
	"go-alloclist/util/logger"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Provider supplies element regions and the list's own root region.
	// Defaults to provider.Heap.
	Provider provider.Provider

	// Locker serializes operations. Defaults to locker.Noop, which makes the
	// list safe for use by a single goroutine only.
	Locker locker.Locker

	Logger *logrus.Entry
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
		res.Logger = logger.Component("alloclist")
	}
	return res
}
