package store

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// cursorPrefix versions the cursor layout so a format change invalidates
// outstanding cursors instead of misreading them
const cursorPrefix = "v1:"

// EncodeCursor produces an opaque continuation cursor from the row ID the
// page ended on.
func EncodeCursor(lastID int64) string {
	raw := cursorPrefix + strconv.FormatInt(lastID, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an opaque continuation cursor back into a row ID.
// An empty cursor means the listing starts from the beginning. Malformed
// cursors fail with domain.ErrInvalidCursor.
func DecodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidCursor, err)
	}

	payload, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: unknown cursor version", domain.ErrInvalidCursor)
	}

	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: bad cursor payload", domain.ErrInvalidCursor)
	}

	return id, nil
}
