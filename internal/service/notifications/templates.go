package notifications

import (
	"bytes"
	"fmt"
	"html/template"
)

const customerBookingSubject = "Cererea de rezervare a fost primită!"

var customerBookingTmpl = template.Must(template.New("customer_booking").Parse(`<body style="background-color: #FFF7E5; font-family: Arial, sans-serif; color: #3B2414; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; border-radius: 8px;">
    <h1 style="font-family: Georgia, serif; color: #3B2414;">Salut {{.Name}},</h1>
    <p>Vă mulțumim pentru interesul acordat ansamblului nostru! Am primit cu succes cererea dumneavoastră de rezervare și o vom procesa în cel mai scurt timp.</p>
    <p>Un membru al echipei noastre vă va contacta telefonic sau prin email pentru a confirma disponibilitatea și pentru a stabili toate detaliile necesare.</p>
    <table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
      <tr><td><strong>Data evenimentului:</strong></td><td>{{.EventDate}}</td></tr>
      <tr><td><strong>Tipul evenimentului:</strong></td><td>{{.EventType}}</td></tr>
      <tr><td><strong>Locația:</strong></td><td>{{.Location}}</td></tr>
    </table>
    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #EAEAEA;">
      <p>
        Cu dragoste pentru tradiție,<br>
        <strong>Ansamblul Chef de Chef</strong><br>
        <a href="tel:+37312345678">+373 12 345 678</a> | <a href="mailto:contact@chefdechef.md">contact@chefdechef.md</a>
      </p>
    </div>
  </div>
</body>`))

var adminBookingTmpl = template.Must(template.New("admin_booking").Parse(`<body style="background-color: #FFF7E5; font-family: Arial, sans-serif; color: #3B2414;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; border-radius: 8px;">
    <h1 style="font-family: Georgia, serif;">Cerere Nouă de Rezervare</h1>
    <table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
      <tr><td><strong>Nume Client:</strong></td><td>{{.Name}}</td></tr>
      <tr><td><strong>Email:</strong></td><td>{{.Email}}</td></tr>
      <tr><td><strong>Telefon:</strong></td><td>{{.Phone}}</td></tr>
      <tr><td><strong>Data Eveniment:</strong></td><td>{{.EventDate}}</td></tr>
      {{- if .StartTime}}
      <tr><td><strong>Ora începerii:</strong></td><td>{{.StartTime}}</td></tr>
      {{- end}}
      <tr><td><strong>Tip Eveniment:</strong></td><td>{{.EventType}}</td></tr>
      <tr><td><strong>Locație:</strong></td><td>{{.Location}}</td></tr>
      <tr><td><strong>Note Client:</strong></td><td>{{if .Notes}}{{.Notes}}{{else}}N/A{{end}}</td></tr>
    </table>
    <p style="text-align: center; margin-top: 30px;"><a href="{{.DashboardURL}}">Vezi în Panoul de Admin</a></p>
  </div>
</body>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<h1>Mesaj Nou de Contact</h1>
<p><strong>Nume:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Telefon:</strong> {{.Phone}}</p>
<p><strong>Mesaj:</strong></p>
<p>{{.Message}}</p>`))

type bookingView struct {
	Name         string
	Email        string
	Phone        string
	EventDate    string
	StartTime    string
	EventType    string
	Location     string
	Notes        string
	DashboardURL string
}

type contactView struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func adminBookingSubject(eventDate string) string {
	return fmt.Sprintf("Cerere nouă de rezervare pentru %s", eventDate)
}

func contactSubject(name string) string {
	return fmt.Sprintf("Mesaj nou de la %s", name)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplate, t.Name(), err)
	}
	return buf.String(), nil
}
