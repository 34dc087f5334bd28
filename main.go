package main

import (
	"fmt"
	r "math/rand"
	"os"
	"strings"
	"sync"

	"go-alloclist/config"
	"go-alloclist/pkg/alloclist"
	"go-alloclist/pkg/priorlist"
	"go-alloclist/pkg/provider"
	"go-alloclist/util/helpers"
	"go-alloclist/util/logger"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var bold = color.New(color.Bold)

func main() {
	app := kingpin.New("alloclist", "Demonstrations of allocation-tracking lists.")
	configFile := app.Flag("config.file", "YAML configuration file.").String()
	logLevel := app.Flag("log.level", "Log level (debug, info, warn, error).").String()

	var cfg *config.AppConfig
	app.PreAction(func(_ *kingpin.ParseContext) error {
		var err error
		if *configFile != "" {
			cfg, err = config.Load(*configFile)
		} else {
			cfg = config.New()
		}
		if err != nil {
			return err
		}
		if *logLevel != "" {
			cfg.Log.Level = *logLevel
		}
		return logger.SetLevel(cfg.Log.Level)
	})

	app.Command("fruit", "Allocate strings in a singly linked list and free them in arbitrary order.").
		Action(func(_ *kingpin.ParseContext) error { return runFruit(cfg) })

	sortCmd := app.Command("sort", "Allocate random integers, then sort the list in place.")
	sortCount := sortCmd.Flag("count", "Number of integers (overrides config).").Int()
	sortCmd.Action(func(_ *kingpin.ParseContext) error {
		if *sortCount > 0 {
			cfg.Demo.Count = *sortCount
		}
		return runSort(cfg)
	})

	app.Command("stress", "Allocate and free concurrently from several goroutines.").
		Action(func(_ *kingpin.ParseContext) error { return runStress(cfg) })

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func runFruit(cfg *config.AppConfig) error {
	list, err := priorlist.New(&priorlist.Options{
		Provider: cfg.Provider(nil),
		Locker:   cfg.Locker(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create list")
	}
	defer list.Destroy()

	handles := map[string]priorlist.Handle{}
	for _, name := range []string{"BANANA", "GRAPE", "APPLE", "ORANGE", "MANDARIN"} {
		h, buf, err := list.Allocate(len(name) + 1)
		if err != nil {
			return err
		}
		copy(buf, name)
		handles[name] = h
	}

	printPriorList(list)
	for _, name := range []string{"GRAPE", "ORANGE", "APPLE", "MANDARIN", "BANANA"} {
		if err := list.Free(handles[name]); err != nil {
			return errors.Wrapf(err, "failed to free '%s'", name)
		}
		printPriorList(list)
	}
	return nil
}

func printPriorList(list *priorlist.List) {
	names := []string{}
	for h, err := list.Last(); err == nil; h, err = list.Prior(h) {
		buf, _ := list.Bytes(h)
		names = append(names, string(helpers.CString(buf)))
	}
	fmt.Printf("list = %s\n", strings.Join(names, ", "))
}

func runSort(cfg *config.AppConfig) error {
	rand := r.New(r.NewSource(cfg.Demo.Seed))
	reg := prometheus.NewRegistry()
	counting := provider.NewCounting(cfg.Provider(reg))

	list, err := alloclist.New(&alloclist.Options{
		Provider: counting,
		Locker:   cfg.Locker(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create list")
	}
	defer alloclist.Destroy(&list)

	bold.Printf("Adding %d random ints\n", cfg.Demo.Count)
	for i := 0; i < cfg.Demo.Count; i++ {
		_, buf, err := list.Allocate(4)
		if err != nil {
			return err
		}
		helpers.PutInt(buf, rand.Int31())
	}
	if err := printIndexed(list); err != nil {
		return err
	}

	bold.Println("Sorting the list")
	if err := list.Sort(helpers.Ascending[int32]()); err != nil {
		return err
	}
	if err := printIndexed(list); err != nil {
		return err
	}

	fmt.Printf("%d regions outstanding, %s\n", counting.Outstanding(), humanize.Bytes(uint64(counting.Bytes())))
	return nil
}

func printIndexed(list *alloclist.List) error {
	for i := 0; i != list.Count(); i++ {
		h, err := list.Index(i)
		if err != nil {
			return err
		}
		buf, err := list.Bytes(h)
		if err != nil {
			return err
		}
		fmt.Printf("index %d = %d\n", i, helpers.Int[int32](buf))
	}
	return nil
}

func runStress(cfg *config.AppConfig) error {
	log := logger.Component("stress")
	counting := provider.NewCounting(cfg.Provider(prometheus.NewRegistry()))

	list, err := alloclist.New(&alloclist.Options{
		Provider: counting,
		Locker:   cfg.Locker(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create list")
	}
	if !cfg.List.Locking {
		log.Warn("locking disabled in config, running workers sequentially")
	}

	var wg sync.WaitGroup
	errs := make(chan error, cfg.Demo.Workers)
	work := func(seed int64) {
		defer wg.Done()
		rand := r.New(r.NewSource(seed))
		kept := []alloclist.Handle{}
		for i := 0; i < cfg.Demo.Count; i++ {
			h, _, err := list.Allocate(1 + rand.Intn(512))
			if err != nil {
				errs <- err
				return
			}
			kept = append(kept, h)
			if rand.Intn(3) == 0 {
				if err := list.Free(kept[0]); err != nil {
					errs <- err
					return
				}
				kept = kept[1:]
			}
		}
	}

	for w := 0; w < cfg.Demo.Workers; w++ {
		wg.Add(1)
		if cfg.List.Locking {
			go work(cfg.Demo.Seed + int64(w))
		} else {
			work(cfg.Demo.Seed + int64(w))
		}
	}
	wg.Wait()
	close(errs)
	if err, ok := <-errs; ok {
		return err
	}

	log.WithField("elements", list.Count()).
		WithField("bytes", humanize.Bytes(uint64(counting.Bytes()))).
		Info("workers finished")

	if err := alloclist.Destroy(&list); err != nil {
		return err
	}
	log.WithField("outstanding", counting.Outstanding()).Info("list destroyed")
	return nil
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}
