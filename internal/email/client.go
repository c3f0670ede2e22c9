package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Client sends transactional mail over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient builds an SMTP client from string config values.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML message.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// BookingInfo carries everything the booking templates need.
type BookingInfo struct {
	ID         int
	Reference  string
	GuestEmail string
	GuestName  string
	RoomName   string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	Adults     int
	Children   int
	TotalPrice float64
}

// SendBookingConfirmation mails the guest after their booking is confirmed.
func (c *Client) SendBookingConfirmation(info BookingInfo) error {
	subject := fmt.Sprintf("Booking Confirmation %s - %s", info.Reference, c.fromName)
	return c.SendEmail(info.GuestEmail, subject, bookingConfirmationHTML(info))
}

// SendBookingCancellation mails the guest after a cancellation.
func (c *Client) SendBookingCancellation(info BookingInfo) error {
	subject := fmt.Sprintf("Booking Cancelled %s - %s", info.Reference, c.fromName)
	return c.SendEmail(info.GuestEmail, subject, bookingCancellationHTML(info))
}

// InquiryInfo carries the contact-form fields forwarded to staff.
type InquiryInfo struct {
	StaffEmail string
	Name       string
	Email      string
	Subject    string
	Message    string
}

// SendInquiryNotification forwards a new inquiry to the staff mailbox.
func (c *Client) SendInquiryNotification(info InquiryInfo) error {
	subject := fmt.Sprintf("New inquiry: %s", info.Subject)
	return c.SendEmail(info.StaffEmail, subject, inquiryHTML(info))
}

func bookingConfirmationHTML(info BookingInfo) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<div style="background-color: #1a5f7a; color: #ffffff; padding: 24px; text-align: center;">
			<h1 style="margin: 0;">Booking Confirmed</h1>
		</div>
		<div style="padding: 24px;">
			<p>Dear %s,</p>
			<p>Your reservation <strong>%s</strong> is confirmed. We look forward to welcoming you.</p>
			<table style="width: 100%%; border-collapse: collapse; margin-top: 16px;">
				<tr>
					<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;"><strong>%s</strong><br>Room %s</td>
					<td style="padding: 12px; border-bottom: 1px solid #e0e0e0; text-align: center;">%s &rarr; %s</td>
					<td style="padding: 12px; border-bottom: 1px solid #e0e0e0; text-align: right;">%d night(s)</td>
				</tr>
				<tr>
					<td style="padding: 12px;" colspan="2">%d adult(s), %d child(ren)</td>
					<td style="padding: 12px; text-align: right;"><strong>Total: $%.2f</strong></td>
				</tr>
			</table>
		</div>
	</div>`,
		info.GuestName,
		info.Reference,
		info.RoomName,
		info.RoomNumber,
		info.CheckIn.Format("Jan 2, 2006"),
		info.CheckOut.Format("Jan 2, 2006"),
		info.Nights,
		info.Adults,
		info.Children,
		info.TotalPrice,
	)
}

func bookingCancellationHTML(info BookingInfo) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<div style="background-color: #7a1a1a; color: #ffffff; padding: 24px; text-align: center;">
			<h1 style="margin: 0;">Booking Cancelled</h1>
		</div>
		<div style="padding: 24px;">
			<p>Dear %s,</p>
			<p>Your reservation <strong>%s</strong> for room %s (%s to %s) has been cancelled.</p>
			<p>If this was a mistake, please contact the front desk.</p>
		</div>
	</div>`,
		info.GuestName,
		info.Reference,
		info.RoomNumber,
		info.CheckIn.Format("Jan 2, 2006"),
		info.CheckOut.Format("Jan 2, 2006"),
	)
}

func inquiryHTML(info InquiryInfo) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>New inquiry from %s</h2>
		<p><strong>Reply to:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>
	</div>`,
		info.Name,
		info.Email,
		info.Subject,
		info.Message,
	)
}
