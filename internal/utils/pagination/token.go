package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeToken creates a base64 encoded token from the position reached in an ordered list
// and the id of the last item returned.
func EncodeToken(offset int, lastID string) string {
	tokenStr := fmt.Sprintf("%d|%s", offset, lastID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into offset and last id.
func DecodeToken(token string) (int, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, "", fmt.Errorf("invalid pagination token format (offset parse): %q", parts[0])
	}
	return offset, parts[1], nil
}

// Resume returns the index to continue from in a list of ids. If the item at offset-1 is
// still lastID the offset is used as is; otherwise the list changed and the position
// right after lastID is used, or offset when lastID is gone.
func Resume(ids []string, offset int, lastID string) int {
	if offset > len(ids) {
		offset = len(ids)
	}
	if offset > 0 && ids[offset-1] == lastID {
		return offset
	}
	for i, id := range ids {
		if id == lastID {
			return i + 1
		}
	}
	return offset
}
