package notify

import "html/template"

const layout = `{{define "slots"}}{{.CourtName}} on {{.BookingDate}} at {{range $i, $s := .TimeSlots}}{{if $i}}, {{end}}{{$s}}{{end}}{{end}}`

func parse(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(layout)).Parse(body))
}

var bookingReceivedTemplate = parse("received", `<p>Hello {{.UserName}},</p>
<p>We received your booking for {{template "slots" .}}. Total: ${{.TotalPrice}}.</p>
<p>An admin will review it shortly.</p>`)

var bookingApprovedTemplate = parse("approved", `<p>Hello {{.UserName}},</p>
<p>Your booking for {{template "slots" .}} was approved and you are now a club member.</p>
<p>Please complete the payment of ${{.TotalPrice}} from your dashboard.</p>`)

var bookingRejectedTemplate = parse("rejected", `<p>Hello {{.UserName}},</p>
<p>Unfortunately your booking for {{template "slots" .}} was rejected.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}`)

var paymentReceiptTemplate = parse("receipt", `<p>Hello {{.UserName}},</p>
<p>We received your payment of ${{.Payment.Amount}} for {{template "slots" .Booking}}.</p>
<p>Transaction: {{.Payment.TransactionID}}</p>`)
