package usecase

import (
	"bytes"
	"html/template"
)

var (
	paymentLinkTemplate = template.Must(template.New("payment_link").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Temporada de caza: link de pago</h2>
  <p>Hola {{.DisplayName}},</p>
  <p>Registramos tu solicitud <strong>{{.EntityID}}</strong> ({{.Category}}).</p>
  <p>El importe a abonar es <strong>$ {{.Amount}}</strong>.</p>
  <p><a href="{{.CheckoutURL}}">Pagar con Mercado Pago</a></p>
  <p>Si ya realizaste el pago, ignora este mensaje.</p>
</body>
</html>`))

	credentialTemplate = template.Must(template.New("credential").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Credencial de temporada</h2>
  <p>Titular: <strong>{{.DisplayName}}</strong></p>
  <p>Numero: <strong>{{.EntityID}}</strong></p>
  <p>Pago aprobado: {{.PaymentID}}{{if .PaidAt}} ({{.PaidAt}}){{end}}</p>
  <p>Presenta esta credencial ante el personal de fiscalizacion.</p>
</body>
</html>`))

	documentTemplate = template.Must(template.New("document").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
  <p>Hola {{.DisplayName}},</p>
  <p>Adjuntamos la documentacion correspondiente a <strong>{{.EntityID}}</strong>.</p>
</body>
</html>`))
)

type messageData struct {
	DisplayName string
	EntityID    string
	Category    string
	Amount      string
	CheckoutURL string
	PaymentID   string
	PaidAt      string
}

func render(t *template.Template, data messageData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
