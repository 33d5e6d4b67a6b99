package notifxsendsculpt

import "github.com/sendsculpt/sendsculpt-go/pkg/errx"

var providerErrors = errx.NewRegistry("NOTIFX_SENDSCULPT")

var ErrSendFailed = providerErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "SendSculpt send email failed")
