// Package mailqueue moves mail documents through redis: the outbound
// delivery queue consumed by an SMTP submitter and the per account folder
// store consumed by an IMAP backend.
package mailqueue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"

	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailfmt"
)

// OutQueue is the redis list of pending outbound document keys.
const OutQueue = "mail:out"

// Processor handles one outbound document. A non nil error puts the
// document back on the queue.
type Processor func(key string, m *mail.Mail, raw string) error

// Document builds the redis key and hash fields for an outbound mail: the
// JSON document, the rendered raw message, and its size. The raw message
// uses the mail UID as its boundary document ID.
func Document(m *mail.Mail) (string, map[string]string, error) {
	uid, err := m.UID()
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash mail: %w", err)
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal mail: %w", err)
	}

	raw := mailfmt.Message(m, uid)
	fields := map[string]string{
		"data": string(doc),
		"raw":  raw,
		"size": strconv.Itoa(len(raw)),
	}
	return OutQueue + ":" + uid, fields, nil
}

// Enqueue stores the outbound document hash and pushes its key onto the
// queue. It returns the key.
func Enqueue(ctx context.Context, client *redis.Client, m *mail.Mail) (string, error) {
	key, fields, err := Document(m)
	if err != nil {
		return "", err
	}
	if err := client.HSet(ctx, key, fields).Err(); err != nil {
		return "", fmt.Errorf("failed to store mail %s: %w", key, err)
	}
	if err := client.RPush(ctx, OutQueue, key).Err(); err != nil {
		return "", fmt.Errorf("failed to queue mail %s: %w", key, err)
	}
	return key, nil
}

// Get retrieves a queued mail document by key.
func Get(ctx context.Context, client *redis.Client, key string) (*mail.Mail, error) {
	doc, err := client.HGet(ctx, key, "data").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("mail %s not found", key)
		}
		return nil, fmt.Errorf("failed to get mail data: %w", err)
	}

	var m mail.Mail
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return nil, fmt.Errorf("failed to parse mail JSON: %w", err)
	}
	return &m, nil
}

// GetRaw retrieves the rendered message for a queued document.
func GetRaw(ctx context.Context, client *redis.Client, key string) (string, error) {
	raw, err := client.HGet(ctx, key, "raw").Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("mail %s not found", key)
		}
		return "", fmt.Errorf("failed to get raw message: %w", err)
	}
	return raw, nil
}

// List returns the keys currently waiting in the outbound queue.
func List(ctx context.Context, client *redis.Client) ([]string, error) {
	return client.LRange(ctx, OutQueue, 0, -1).Result()
}

// Count returns the number of documents waiting in the outbound queue.
func Count(ctx context.Context, client *redis.Client) (int64, error) {
	return client.LLen(ctx, OutQueue).Result()
}

// Process pops documents off the outbound queue and hands them to the
// processor. A document whose processor fails goes back on the queue
// before the error is returned. The loop runs until the context is done.
func Process(ctx context.Context, client *redis.Client, processor Processor, timeout time.Duration) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := client.BLPop(ctx, timeout, OutQueue).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return fmt.Errorf("failed to pop from queue: %w", err)
		}
		if len(result) < 2 {
			continue
		}
		key := result[1]

		m, err := Get(ctx, client, key)
		if err != nil {
			return err
		}
		raw, err := GetRaw(ctx, client, key)
		if err != nil {
			return err
		}

		if err := processor(key, m, raw); err != nil {
			if pushErr := client.RPush(ctx, OutQueue, key).Err(); pushErr != nil {
				return fmt.Errorf("failed to requeue mail %s: %w", key, pushErr)
			}
			return fmt.Errorf("failed to process mail %s: %w", key, err)
		}

		if err := client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete mail %s: %w", key, err)
		}
	}
}
