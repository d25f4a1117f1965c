package youtube

import (
	"context"
	"fmt"
	"strings"
)

// channelIDPrefix is the fixed prefix of canonical YouTube channel IDs.
const channelIDPrefix = "UC"

// ResolveChannelID maps a raw channel ID, an @handle, or a free-text channel
// name to a canonical channel ID. Input already carrying the canonical
// prefix is returned unchanged without touching the network.
func (c *Client) ResolveChannelID(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, channelIDPrefix) {
		return input, nil
	}

	query := strings.TrimPrefix(input, "@")

	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx)
	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("channel search for %q: %w", query, err)
	}

	for _, item := range response.Items {
		if item.Id != nil && item.Id.ChannelId != "" {
			return item.Id.ChannelId, nil
		}
	}

	return "", ErrChannelNotFound
}
