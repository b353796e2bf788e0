package email

import (
	"bytes"
	"html/template"
)

const htmlLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Subject}}</title></head>
<body>
<pre style="font-family: sans-serif; white-space: pre-wrap;">{{.Body}}</pre>
</body>
</html>`

var layout = template.Must(template.New("email").Parse(htmlLayout))

// Renders HTML alternative of the message body, all values are escaped.
func renderHTML(msg Message) (string, error) {
	buf := new(bytes.Buffer)

	if err := layout.Execute(buf, msg); err != nil {
		log.Error("Failed to render email template", err.Error(), nil)
		return "", err
	}

	return buf.String(), nil
}
