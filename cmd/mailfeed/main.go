package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailbox"
	"github.com/freeflowuniverse/heromail/pkg/mailqueue"
	"github.com/redis/go-redis/v9"
)

var (
	// Sample data for generating random mails
	senders = []string{
		"john.doe@example.com",
		"jane.smith@example.com",
		"bob.johnson@example.com",
		"alice.williams@example.com",
		"david.brown@example.com",
	}

	recipients = []string{
		"recipient1@example.com",
		"recipient2@example.com",
		"recipient3@example.com",
		"recipient4@example.com",
		"recipient5@example.com",
		"team@example.com",
	}

	subjects = []string{
		"Meeting Agenda for Next Week",
		"Project Update: Phase 2 Complete",
		"Quarterly Report: Q1 2025",
		"Invitation to Company Event",
		"Important Announcement",
		"Follow-up on Previous Discussion",
		"New Product Launch",
		"Customer Feedback Summary",
		"Upcoming Deadlines",
		"Team Building Activity",
	}

	texts = []string{
		"Hello,\n\nI hope this email finds you well. I wanted to discuss the upcoming project deadlines.\n\nBest regards,\n%s",
		"Hi team,\n\nPlease find attached the latest report on our quarterly performance.\n\nRegards,\n%s",
		"Dear colleague,\n\nI'm writing to invite you to our annual company retreat next month.\n\nLooking forward to your response,\n%s",
		"Greetings,\n\nThis is a reminder about the meeting scheduled for tomorrow at 10 AM.\n\nThank you,\n%s",
		"Hello,\n\nI wanted to follow up on our conversation from last week regarding the new project.\n\nBest,\n%s",
	}

	// Base folder structure with potential subfolders
	folderStructure = map[string][]string{
		"inbox":    {"important", "work", "personal"},
		"sent":     {"work", "personal", "archive"},
		"drafts":   {},
		"archive":  {"2023", "2024", "2025"},
		"work":     {"projects", "meetings", "reports"},
		"personal": {"family", "friends", "finance"},
		"projects": {"projectA", "projectB", "projectC"},
		"reports":  {"quarterly", "annual", "monthly"},
	}

	dummyPDF         = "SGVsbG8sIHRoaXMgaXMgYSBkdW1teSBQREYgZmlsZSBjb250ZW50Lg=="
	dummyPDFBytes, _ = base64.StdEncoding.DecodeString(dummyPDF)
)

// displayName derives a human readable name from the local part of an
// address, e.g. "john.doe@example.com" becomes "John Doe".
func displayName(address string) string {
	name := strings.Split(address, "@")[0]
	name = strings.ReplaceAll(name, ".", " ")
	return strings.Title(name)
}

// generateRandomMail creates a random mail document
func generateRandomMail(r *rand.Rand) *mail.Mail {
	// Choose random sender and format name
	sender := senders[r.Intn(len(senders))]
	senderName := displayName(sender)

	// Choose 1-3 random recipients
	numRecipients := r.Intn(3) + 1
	to := make([]mail.Address, 0, numRecipients)
	seen := make(map[string]bool)
	for i := 0; i < numRecipients; i++ {
		recipient := recipients[r.Intn(len(recipients))]
		// Avoid duplicates
		if !seen[recipient] {
			seen[recipient] = true
			to = append(to, mail.Address{Name: displayName(recipient), Address: recipient})
		}
	}
	toText := make([]string, 0, len(to))
	for _, addr := range to {
		toText = append(toText, fmt.Sprintf("%s <%s>", addr.Name, addr.Address))
	}

	// Choose random subject and text, formatted with the sender name
	subject := subjects[r.Intn(len(subjects))]
	text := fmt.Sprintf(texts[r.Intn(len(texts))], senderName)

	m := &mail.Mail{
		Subject:   subject,
		Date:      time.Now().Add(-time.Duration(r.Intn(720)) * time.Hour),
		MessageID: fmt.Sprintf("<%x.%x@example.com>", time.Now().UnixNano(), r.Intn(1<<16)),
		From: &mail.AddressField{
			Text:  fmt.Sprintf("%s <%s>", senderName, sender),
			Value: []mail.Address{{Name: senderName, Address: sender}},
		},
		To: &mail.AddressField{
			Text:  strings.Join(toText, ", "),
			Value: to,
		},
		Text:     text,
		Read:     r.Intn(2) == 0,
		Answered: r.Intn(5) == 0,
	}

	// Randomly add an attachment (20% chance)
	if r.Intn(5) == 0 {
		m.Attachments = append(m.Attachments, mail.Attachment{
			ID:          fmt.Sprintf("att-%d", r.Intn(1000)),
			Filename:    "document.pdf",
			Size:        len(dummyPDFBytes),
			ContentType: "application/pdf",
			Data:        dummyPDF,
		})
	}

	return m
}

// generateRandomFolder creates a random folder path with up to 3 levels
func generateRandomFolder(r *rand.Rand) string {
	// Start with a base folder
	baseKeys := make([]string, 0, len(folderStructure))
	for k := range folderStructure {
		baseKeys = append(baseKeys, k)
	}

	folder := baseKeys[r.Intn(len(baseKeys))]
	depth := r.Intn(3) + 1 // 1-3 levels deep

	currentFolder := folder
	path := []string{currentFolder}

	// Add subfolders based on the depth
	for i := 1; i < depth; i++ {
		if subfolders, ok := folderStructure[currentFolder]; ok && len(subfolders) > 0 {
			subfolder := subfolders[r.Intn(len(subfolders))]
			path = append(path, subfolder)
			currentFolder = subfolder
		} else {
			break
		}
	}

	return strings.Join(path, "/")
}

func main() {
	// Parse command line flags
	redisAddr := flag.String("redis-addr", "localhost:6378", "Redis server address")
	redisPassword := flag.String("redis-password", "", "Redis server password")
	redisDB := flag.Int("redis-db", 0, "Redis database number")
	numMails := flag.Int("num-mails", 100, "Number of mails to generate")
	enqueue := flag.Bool("enqueue", false, "Also push every generated mail onto the outgoing queue")
	flag.Parse()

	// Initialize random number generator with a source
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Create Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: *redisPassword,
		DB:       *redisDB,
	})

	// Test Redis connection
	ctx := context.Background()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", *redisAddr, err)
	}
	log.Printf("Successfully connected to Redis at %s", *redisAddr)

	// Generate and store random mails
	log.Printf("Generating %d random mails...", *numMails)

	for i := 0; i < *numMails; i++ {
		m := generateRandomMail(r)

		// Derive the account from the primary recipient and pick a folder
		account := mailbox.AccountToBox(m.To.Value[0].Address)
		folder := generateRandomFolder(r)

		key, err := mailqueue.Store(ctx, redisClient, account, folder, m)
		if err != nil {
			log.Printf("Failed to store mail in Redis: %v", err)
			continue
		}
		log.Printf("Stored mail %d/%d with key: %s", i+1, *numMails, key)

		if *enqueue {
			outKey, err := mailqueue.Enqueue(ctx, redisClient, m)
			if err != nil {
				log.Printf("Failed to enqueue mail: %v", err)
				continue
			}
			log.Printf("Enqueued mail %d/%d with key: %s", i+1, *numMails, outKey)
		}
	}

	log.Printf("Successfully generated and stored %d random mails in Redis", *numMails)
}
