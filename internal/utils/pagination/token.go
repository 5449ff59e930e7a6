package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EntryCursor is the position of the last entry on a page. Entries are listed by
// occurredOn desc, createdAt desc, entryID desc, so the three fields form a total order.
type EntryCursor struct {
	OccurredOn time.Time
	CreatedAt  time.Time
	EntryID    string
}

// After reports whether an entry at (occurredOn, createdAt, entryID) sorts after the cursor.
func (c EntryCursor) After(occurredOn, createdAt time.Time, entryID string) bool {
	if !occurredOn.Equal(c.OccurredOn) {
		return occurredOn.Before(c.OccurredOn)
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.Before(c.CreatedAt)
	}
	return entryID < c.EntryID
}

// EncodeEntryCursor creates an opaque, URL-safe token for the cursor.
func EncodeEntryCursor(c EntryCursor) string {
	tokenStr := strings.Join([]string{
		c.OccurredOn.UTC().Format(timeFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.EntryID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (EntryCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	occurredOn, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (occurred_on parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return EntryCursor{OccurredOn: occurredOn, CreatedAt: createdAt, EntryID: parts[2]}, nil
}
