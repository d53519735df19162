// Command timer-demo walks through the cancellable timer: an uninterrupted
// sleep, a sleep cancelled up front, reuse after cancellation, a sleep cut
// short from another goroutine, and the After callback form.
package main

import (
	"os"
	"time"

	timer "github.com/Emm54321/cancellable-timer"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

func run(log zerolog.Logger) error {
	tm, canceller, err := timer.New()
	if err != nil {
		return err
	}
	defer tm.Close()

	log.Info().Dur("wait", 2*time.Second).Msg("sleep, uninterrupted")
	outcome, err := tm.Sleep(2 * time.Second)
	if err != nil {
		return err
	}
	log.Info().Stringer("outcome", outcome).Msg("done")

	log.Info().Dur("wait", 2*time.Second).Msg("sleep, cancelled up front")
	if err := canceller.Cancel(); err != nil {
		return err
	}
	outcome, err = tm.Sleep(2 * time.Second)
	if err != nil {
		return err
	}
	log.Info().Stringer("outcome", outcome).Msg("done")

	// The cancel was consumed, so the timer is usable again.
	log.Info().Dur("wait", 2*time.Second).Msg("sleep, not cancelled")
	outcome, err = tm.Sleep(2 * time.Second)
	if err != nil {
		return err
	}
	log.Info().Stringer("outcome", outcome).Msg("done")

	log.Info().Dur("wait", 10*time.Second).Msg("sleep, cancel after 2s")
	clone := canceller.Clone()
	go func() {
		time.Sleep(2 * time.Second)
		log.Info().Msg("stop the timer")
		if err := clone.Cancel(); err != nil {
			log.Warn().Err(err).Msg("cancel failed")
		}
	}()
	outcome, err = tm.Sleep(10 * time.Second)
	if err != nil {
		return err
	}
	log.Info().Stringer("outcome", outcome).Msg("done")

	return runAfter(log)
}

func runAfter(log zerolog.Logger) error {
	done := make(chan struct{}, 2)
	callback := func(outcome timer.Outcome, err error) {
		if err != nil {
			log.Error().Err(err).Msg("callback failed")
		} else {
			log.Info().Stringer("outcome", outcome).Msg("callback ran")
		}
		done <- struct{}{}
	}

	log.Info().Msg("run callback after 2s")
	if _, err := timer.After(2*time.Second, callback); err != nil {
		return err
	}
	<-done

	log.Info().Msg("run callback after 4s, cancel after 2s")
	canceller, err := timer.After(4*time.Second, callback)
	if err != nil {
		return err
	}

	time.Sleep(2 * time.Second)
	log.Info().Msg("cancel timer")
	if err := canceller.Cancel(); err != nil {
		return err
	}
	<-done

	return nil
}
