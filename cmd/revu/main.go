package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"

	"github.com/revu-dev/revu/internal/adapters/inbound/cli"
)

func main() {
	logE := logrus.NewEntry(logrus.New()).WithField("program", "revu")
	if err := core(); err != nil {
		if errors.Is(err, cli.ErrReviewFailed) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("revu failed")
	}
}

func core() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Execute(ctx)
}
