// Command sendsculpt sends one email through the SendSculpt API.
//
//	sendsculpt send -to user@example.com -from me@example.com -subject Hi -text Hello
//	sendsculpt send -f request.yaml -attach ./invoice.pdf
//
// The API key and defaults come from SENDSCULPT_* environment variables.
// The result is printed to stdout as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sendsculpt/sendsculpt-go/pkg/config"
	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	logx.SetDefaultLogger(logx.NewLogger(logx.LoadFromEnv()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "send":
		return runSend(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: sendsculpt send [flags]")
	fmt.Fprintln(w, "run 'sendsculpt send -h' for the list of flags")
}

type sendOutput struct {
	MessageID  string `json:"message_id"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
}

func runSend(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f sendFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(stderr, err)
	}
	if f.environment != "" {
		cfg.SendSculpt.Environment = f.environment
	}
	if f.baseURL != "" {
		cfg.SendSculpt.BaseURL = f.baseURL
	}
	if err := cfg.SendSculpt.Validate(); err != nil {
		return fail(stderr, err)
	}

	req, err := f.buildRequest()
	if err != nil {
		return fail(stderr, err)
	}

	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return fail(stderr, err)
	}

	res, err := container.Client.SendEmail(ctx, req)
	if err != nil {
		return fail(stderr, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sendOutput{
		MessageID:  res.MessageID,
		Status:     res.Status,
		StatusCode: res.StatusCode,
	}); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

// fail prints err and, for errx errors, its code and details.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "sendsculpt: %v\n", err)

	if e, ok := errx.As(err); ok {
		logx.WithFields(logx.Fields{
			"code":    e.Code,
			"type":    e.Type,
			"details": e.Details,
		}).Debug("send failed")
		if sendsculpt.IsValidationError(err) {
			fmt.Fprintln(stderr, "no request was sent")
		}
	}
	return exitFailure
}
