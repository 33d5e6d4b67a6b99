package main

import "github.com/sendsculpt/sendsculpt-go/pkg/errx"

var cliErrors = errx.NewRegistry("CLI")

var (
	ErrUsage       = cliErrors.Register("USAGE", errx.TypeValidation, 400, "Invalid usage")
	ErrRequestFile = cliErrors.Register("REQUEST_FILE", errx.TypeValidation, 400, "Unable to load request file")
	ErrStorage     = cliErrors.Register("STORAGE", errx.TypeInternal, 500, "Unable to initialize attachment storage")
)
