package mailqueue

import (
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// FolderKey returns the storage key for a document in an account folder.
func FolderKey(account, folder, uid string) string {
	return fmt.Sprintf("mail:in:%s:%s:%s", account, folder, uid)
}

// Store writes the JSON document under the account folder key and returns
// the key. The document UID doubles as the storage UID.
func Store(ctx context.Context, client *redis.Client, account, folder string, m *mail.Mail) (string, error) {
	uid, err := m.UID()
	if err != nil {
		return "", fmt.Errorf("failed to hash mail: %w", err)
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal mail: %w", err)
	}

	key := FolderKey(account, folder, uid)
	if err := client.Set(ctx, key, string(doc), 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store mail %s: %w", key, err)
	}
	return key, nil
}

// LoadFolder scans one account folder and returns its documents keyed by
// storage key.
func LoadFolder(ctx context.Context, client *redis.Client, account, folder string) (map[string]*mail.Mail, error) {
	pattern := FolderKey(account, folder, "*")
	docs := make(map[string]*mail.Mail)

	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan folder %s: %w", pattern, err)
		}

		for _, key := range keys {
			doc, err := client.Get(ctx, key).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				return nil, fmt.Errorf("failed to get mail %s: %w", key, err)
			}
			var m mail.Mail
			if err := json.Unmarshal([]byte(doc), &m); err != nil {
				return nil, fmt.Errorf("failed to parse mail %s: %w", key, err)
			}
			docs[key] = &m
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
	return docs, nil
}
