package mailer

import (
	"bytes"
	"html/template"
	texttemplate "text/template"
)

// Body holds both renderings of one notification: the rich HTML part and
// the plain-text fallback for clients that don't render HTML.
type Body struct {
	HTML string
	Text string
}

// textTmpl is the plain-text fallback. Keep its wording in step with the
// HTML template, "valid for 1 hour" included.
var textTmpl = texttemplate.Must(texttemplate.New("notification_text").Parse(
	`Your file has been uploaded

{{.BlobName}} was uploaded successfully. You can download it using the link
below. The link is valid for 1 hour.

{{.Link}}

The link expires automatically. If it has expired, upload the file again to
receive a fresh one.
`))

// bodyTmpl is the HTML wrapper for upload notifications. {{.BlobName}} and
// {{.Link}} are auto-escaped by html/template. The "valid for 1 hour" text
// mirrors the signed link's expiry.
var bodyTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>Your file has been uploaded</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f5;
     font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
         style="background-color:#f4f4f5;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" role="presentation"
               style="max-width:600px;width:100%;background-color:#ffffff;border-radius:12px;">
          <tr>
            <td style="padding:36px 40px;">
              <p style="margin:0 0 16px 0;font-size:16px;font-weight:600;color:#111827;">
                Your file has been uploaded
              </p>
              <p style="margin:0 0 16px 0;font-size:14px;line-height:1.7;color:#374151;">
                <strong>{{.BlobName}}</strong> was uploaded successfully.
                You can download it using the link below. The link is valid for 1 hour.
              </p>
              <p style="margin:0;font-size:14px;line-height:1.7;">
                <a href="{{.Link}}" style="color:#6366f1;word-break:break-all;">Download {{.BlobName}}</a>
              </p>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f9fafb;padding:20px 40px;
                       border-top:1px solid #e5e7eb;border-radius:0 0 12px 12px;">
              <p style="margin:0;font-size:12px;color:#6b7280;">
                This link expires automatically. If it has expired, upload the file again
                to receive a fresh one.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// BuildBody renders both parts of the notification for one uploaded blob
// and its signed download link.
func BuildBody(blobName, link string) (Body, error) {
	data := struct {
		BlobName string
		Link     string
	}{BlobName: blobName, Link: link}

	var html bytes.Buffer
	if err := bodyTmpl.Execute(&html, data); err != nil {
		return Body{}, err
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return Body{}, err
	}

	return Body{HTML: html.String(), Text: text.String()}, nil
}
