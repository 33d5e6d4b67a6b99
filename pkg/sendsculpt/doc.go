// Package sendsculpt is a client for the SendSculpt transactional email API.
//
// A send goes through three steps. The request is validated and normalized
// into an EmailSendPayload (attachments are resolved to base64 and absent
// optional fields are dropped), the payload is POSTed to {base_url}/send by a
// Transport, and the raw response is interpreted into a SendResult or a
// typed error.
//
//	client := sendsculpt.NewClient(apiKey, sendsculpt.WithEnvironment("sandbox"))
//	res, err := client.SendEmail(ctx, sendsculpt.EmailSendRequest{
//	    To:        []string{"r@example.com"},
//	    Subject:   "Welcome",
//	    FromEmail: "noreply@example.com",
//	    BodyText:  "Hello",
//	})
//	if errx.IsCode(err, sendsculpt.ErrAPI) {
//	    status, _ := sendsculpt.StatusCode(err)
//	    ...
//	}
//
// Validation and attachment errors are returned before any network call is
// made. Nothing is retried.
package sendsculpt
