package notifications

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/integrations/resend"
)

const (
	defaultSendTimeout = 10 * time.Second

	customerSenderName = "Chef de Chef"
	adminSenderName    = "Notificare Site"
)

// Dispatcher рассылает письма о новых заявках и сообщениях и публикует доменные события.
// Все методы best effort: исход возвращается в Result, ошибки только логируются.
type Dispatcher struct {
	sender    EmailSender
	publisher EventPublisher
	record    Recorder
	cfg       Config
	logger    Logger
	now       func() time.Time
}

// NewDispatcher создает диспетчер. sender == nil означает, что почта не настроена;
// publisher == nil отключает публикацию событий.
func NewDispatcher(sender EmailSender, publisher EventPublisher, cfg Config, logger Logger) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}
	return &Dispatcher{
		sender:    sender,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// WithRecorder подключает учет исходов в метриках
func (d *Dispatcher) WithRecorder(r Recorder) *Dispatcher {
	d.record = r
	return d
}

// Configured reports whether emails can be sent at all
func (d *Dispatcher) Configured() bool {
	return d.sender != nil && d.cfg.From != "" && d.cfg.AdminEmail != ""
}

// BookingCreated отправляет подтверждение клиенту и уведомление администратору
func (d *Dispatcher) BookingCreated(ctx context.Context, b *domain.Booking) Result {
	d.publish(ctx, EventBookingCreated, newBookingEvent(b, d.now()))

	if !d.Configured() {
		d.logger.Error("BookingCreated: email configuration is missing, booking id=%s not notified", b.ID)
		return d.finish(KindBooking, Result{Reason: ReasonNotConfigured})
	}

	view := bookingView{
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		EventDate:    b.EventDate.String(),
		EventType:    b.EventType,
		Location:     b.Location,
		DashboardURL: strings.TrimRight(d.cfg.SiteURL, "/") + "/admin/dashboard",
	}
	if b.StartTime != nil {
		view.StartTime = b.StartTime.String()
	}
	if b.Notes != nil {
		view.Notes = strings.TrimSpace(*b.Notes)
	}

	customerHTML, err := render(customerBookingTmpl, view)
	if err != nil {
		d.logger.Error("BookingCreated: %v", err)
		return d.finish(KindBooking, Result{Reason: ReasonSendFailed})
	}
	adminHTML, err := render(adminBookingTmpl, view)
	if err != nil {
		d.logger.Error("BookingCreated: %v", err)
		return d.finish(KindBooking, Result{Reason: ReasonSendFailed})
	}

	// Письмо клиенту уходит первым; при его ошибке администратору не пишем
	emails := []*resend.Email{
		{
			From:    d.fromHeader(customerSenderName),
			To:      []string{b.Email},
			Subject: customerBookingSubject,
			HTML:    customerHTML,
		},
		{
			From:    d.fromHeader(adminSenderName),
			To:      []string{d.cfg.AdminEmail},
			Subject: adminBookingSubject(b.EventDate.String()),
			HTML:    adminHTML,
			ReplyTo: b.Email,
		},
	}
	for _, email := range emails {
		if err := d.send(ctx, email); err != nil {
			d.logger.Error("BookingCreated: failed to send %q for booking id=%s: %v", email.Subject, b.ID, err)
			return d.finish(KindBooking, Result{Reason: ReasonSendFailed})
		}
	}

	d.logger.Info("BookingCreated: notifications sent for booking id=%s", b.ID)
	return d.finish(KindBooking, Result{Delivered: true})
}

// ContactCreated отправляет администратору сообщение из формы обратной связи
func (d *Dispatcher) ContactCreated(ctx context.Context, m *domain.ContactMessage) Result {
	d.publish(ctx, EventContactCreated, ContactEvent{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		OccurredAt: d.now().UTC(),
	})

	if !d.Configured() {
		d.logger.Error("ContactCreated: email configuration is missing, message id=%s not forwarded", m.ID)
		return d.finish(KindContact, Result{Reason: ReasonNotConfigured})
	}

	html, err := render(contactTmpl, contactView{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Message: m.Message,
	})
	if err != nil {
		d.logger.Error("ContactCreated: %v", err)
		return d.finish(KindContact, Result{Reason: ReasonSendFailed})
	}

	err = d.send(ctx, &resend.Email{
		From:    d.fromHeader(adminSenderName),
		To:      []string{d.cfg.AdminEmail},
		Subject: contactSubject(m.Name),
		HTML:    html,
		ReplyTo: m.Email,
	})
	if err != nil {
		d.logger.Error("ContactCreated: failed to send message id=%s: %v", m.ID, err)
		return d.finish(KindContact, Result{Reason: ReasonSendFailed})
	}

	d.logger.Info("ContactCreated: message id=%s forwarded to admin", m.ID)
	return d.finish(KindContact, Result{Delivered: true})
}

// BookingUpdated публикует событие об изменении заявки администратором
func (d *Dispatcher) BookingUpdated(ctx context.Context, b *domain.Booking) {
	d.publish(ctx, EventBookingUpdated, newBookingEvent(b, d.now()))
}

// fromHeader собирает "Имя <адрес>"; имя, уже указанное в cfg.From, заменяется
func (d *Dispatcher) fromHeader(name string) string {
	addr := strings.TrimSpace(d.cfg.From)
	if parsed, err := mail.ParseAddress(addr); err == nil {
		addr = parsed.Address
	}
	return name + " <" + addr + ">"
}

func (d *Dispatcher) send(ctx context.Context, email *resend.Email) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	_, err := d.sender.Send(ctx, email)
	return err
}

func (d *Dispatcher) publish(ctx context.Context, key string, payload any) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.PublishJSON(ctx, key, payload); err != nil {
		d.logger.Warn("publish %s: %v", key, err)
	}
}

func (d *Dispatcher) finish(kind string, res Result) Result {
	if d.record != nil {
		d.record(kind, res.Outcome())
	}
	return res
}
