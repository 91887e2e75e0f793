package monitor

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dlock8/InterconnectIO-Slave/host/logger"
	"github.com/dlock8/InterconnectIO-Slave/host/serial"
)

var log = logger.LogContainer.GetSimpleLogger()

// DialFunc opens the console of one board. The monitor dials with a
// blocking read timeout; cancellation closes the port to unblock reads.
type DialFunc func() (serial.Port, error)

// Tailer keeps one board console open, parsing each line and sending it
// downstream. Connection loss is absorbed with exponential backoff, so
// unplugging a board only pauses its feed.
type Tailer struct {
	// Name identifies the console in log output, usually the device path.
	Name string

	// Dial opens the console; called again after every failure.
	Dial DialFunc

	retry backoff.ExponentialBackOff
}

// NewTailer creates a tailer for one console.
func NewTailer(name string, dial DialFunc) *Tailer {
	return &Tailer{
		Name: name,
		Dial: dial,
		retry: backoff.ExponentialBackOff{
			InitialInterval:     time.Second,
			RandomizationFactor: 0.5,
			Multiplier:          2,
			MaxInterval:         30 * time.Second,
			MaxElapsedTime:      0,
			Clock:               backoff.SystemClock,
		},
	}
}

// Run tails the console until ctx is canceled, sending each parsed line
// to out. The only non-nil return is ctx.Err().
func (t *Tailer) Run(ctx context.Context, out chan<- Line) error {
	t.retry.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		port, err := t.Dial()
		if err != nil {
			delay := t.retry.NextBackOff()
			log.Warnf("Console %s open failed: %v, retrying in %v", t.Name, err, delay)
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		}
		t.retry.Reset()
		log.Infof("Console %s connected", t.Name)

		err = t.tail(ctx, port, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		delay := t.retry.NextBackOff()
		log.Warnf("Console %s dropped: %v, reconnecting in %v", t.Name, err, delay)
		if err := sleepCtx(ctx, delay); err != nil {
			return err
		}
	}
}

// tail reads lines until the port fails or ctx is canceled. The port is
// closed on return; a watcher closes it early on cancellation so a
// blocking read cannot outlive the context.
func (t *Tailer) tail(ctx context.Context, port serial.Port, out chan<- Line) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			port.Close()
		case <-done:
			port.Close()
		}
	}()

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := Parse(scanner.Text())
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}

// sleepCtx sleeps for d unless ctx is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	tmr := time.NewTimer(d)
	defer tmr.Stop()
	select {
	case <-tmr.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
