package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailfmt"
	"github.com/freeflowuniverse/heromail/pkg/mailqueue"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Parse command line flags
	host := flag.String("host", "localhost", "SMTP server host")
	port := flag.Int("port", 2525, "SMTP server port")
	from := flag.String("from", "sender@example.com", "Sender email address")
	to := flag.String("to", "recipient@example.com", "Recipient email address (comma-separated for multiple)")
	subject := flag.String("subject", "Test Email", "Email subject")
	text := flag.String("text", "This is a test email sent from the SMTP client.", "Plain text body")
	html := flag.String("html", "", "HTML body (optional)")
	attachment := flag.String("attachment", "", "Path to file to attach (optional)")
	queue := flag.Bool("queue", false, "Drain the outgoing redis queue instead of sending a single mail")
	redisAddr := flag.String("redis-addr", "localhost:6378", "Redis server address used with -queue")
	redisPassword := flag.String("redis-password", "", "Redis server password")
	redisDB := flag.Int("redis-db", 0, "Redis database number")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", *host, *port)

	if *queue {
		drainQueue(addr, *redisAddr, *redisPassword, *redisDB)
		return
	}

	// Parse recipient list
	recipients := strings.Split(*to, ",")
	for i, recipient := range recipients {
		recipients[i] = strings.TrimSpace(recipient)
	}

	m, err := buildMail(*from, recipients, *subject, *text, *html, *attachment)
	if err != nil {
		log.Fatalf("Failed to build mail: %v", err)
	}

	log.Printf("Connecting to SMTP server at %s", addr)
	if err := send(addr, *from, recipients, submission(m)); err != nil {
		log.Fatalf("Failed to send mail: %v", err)
	}

	log.Printf("Mail sent successfully from %s to %s", *from, strings.Join(recipients, ", "))
	if *attachment != "" {
		log.Printf("Attachment: %s", *attachment)
	}
}

// buildMail assembles the mail document submitted by the one-shot path.
func buildMail(from string, recipients []string, subject, text, html, attachmentPath string) (*mail.Mail, error) {
	toValue := make([]mail.Address, 0, len(recipients))
	for _, recipient := range recipients {
		toValue = append(toValue, mail.Address{Address: recipient})
	}

	m := &mail.Mail{
		Subject: subject,
		Date:    time.Now(),
		From:    &mail.AddressField{Text: from, Value: []mail.Address{{Address: from}}},
		To:      &mail.AddressField{Text: strings.Join(recipients, ", "), Value: toValue},
		Text:    text,
		HTML:    html,
	}

	if attachmentPath != "" {
		att, err := loadAttachment(attachmentPath)
		if err != nil {
			return nil, err
		}
		m.Attachments = append(m.Attachments, att)
	}

	return m, nil
}

// loadAttachment reads a file into an attachment with base64 encoded data.
func loadAttachment(path string) (mail.Attachment, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return mail.Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}

	// Determine content type based on file extension
	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".pdf":
		contentType = "application/pdf"
	case ".txt":
		contentType = "text/plain"
	case ".html":
		contentType = "text/html"
	}

	return mail.Attachment{
		Filename:    filepath.Base(path),
		Size:        len(fileData),
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(fileData),
	}, nil
}

// submission renders the full message handed to the SMTP server: transport
// headers first, then the MIME message.
func submission(m *mail.Mail) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", m.From.Text))
	b.WriteString(fmt.Sprintf("To: %s\r\n", m.To.Text))
	b.WriteString("Date: " + m.Date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString(mailfmt.Message(m, ""))
	return b.String()
}

// send submits one rendered message over SMTP.
func send(addr, from string, recipients []string, msg string) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	if err := client.Mail(from, nil); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range recipients {
		if err := client.Rcpt(recipient, nil); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to send DATA command: %w", err)
	}
	if _, err := io.WriteString(wc, msg); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send message: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	return client.Quit()
}

// drainQueue pops rendered mails off the outgoing redis queue and submits
// them over SMTP until interrupted.
func drainQueue(smtpAddr, redisAddr, redisPassword string, redisDB int) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", redisAddr, err)
	}
	log.Printf("Successfully connected to Redis at %s", redisAddr)

	// Stop draining on interrupt
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("Shutting down queue processor...")
		cancel()
	}()

	log.Printf("Draining outgoing mail queue via SMTP server at %s", smtpAddr)
	err := mailqueue.Process(ctx, redisClient, func(key string, m *mail.Mail, raw string) error {
		from := senderAddress(m)
		recipients := envelopeRecipients(m)
		if from == "" || len(recipients) == 0 {
			return fmt.Errorf("mail %s has no usable sender or recipients", key)
		}

		var b strings.Builder
		b.WriteString(fmt.Sprintf("From: %s\r\n", from))
		b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(recipients, ", ")))
		b.WriteString("Date: " + m.Date.Format(time.RFC1123Z) + "\r\n")
		b.WriteString(raw)

		if err := send(smtpAddr, from, recipients, b.String()); err != nil {
			return err
		}
		log.Printf("Sent mail %s to %s", key, strings.Join(recipients, ", "))
		return nil
	}, 5*time.Second)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Queue processing stopped: %v", err)
	}
}

// senderAddress picks the SMTP envelope sender from the mail document.
func senderAddress(m *mail.Mail) string {
	addrs := m.From.Addresses()
	if len(addrs) == 0 {
		return ""
	}
	return addrs[0].Address
}

// envelopeRecipients collects every recipient address across To, Cc and Bcc.
func envelopeRecipients(m *mail.Mail) []string {
	var recipients []string
	for _, field := range []*mail.AddressField{m.To, m.Cc, m.Bcc} {
		for _, addr := range field.Addresses() {
			recipients = append(recipients, addr.Address)
		}
	}
	return recipients
}
