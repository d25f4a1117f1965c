package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yt-dashboard/internal/models"
)

// UpsertChannel writes one channel record with merge-by-primary-key
// semantics inside a single transaction. A re-fetch replaces every mutable
// field; the channel ID never changes.
func (p *Postgres) UpsertChannel(ctx context.Context, channel *models.Channel) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin channel upsert: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO channels (channel_id, channel_name, description, subscribers, total_videos, total_views, created_date, thumbnail_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (channel_id) DO UPDATE SET
channel_name = EXCLUDED.channel_name,
description = EXCLUDED.description,
subscribers = EXCLUDED.subscribers,
total_videos = EXCLUDED.total_videos,
total_views = EXCLUDED.total_views,
created_date = EXCLUDED.created_date,
thumbnail_url = EXCLUDED.thumbnail_url`,
		channel.ChannelID, channel.Name, channel.Description, channel.Subscribers,
		channel.TotalVideos, channel.TotalViews, channel.CreatedAt, channel.ThumbnailURL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("upsert channel %s: %w", channel.ChannelID, err)
	}

	return tx.Commit()
}

// UpsertVideos writes the full batch of video and statistics rows in one
// transaction, each row merge-by-primary-key. Any failure rolls back the
// entire batch.
func (p *Postgres) UpsertVideos(ctx context.Context, details []models.VideoDetail) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin video upsert: %w", err)
	}

	for _, detail := range details {
		video := detail.Video
		_, err = tx.ExecContext(ctx, `
INSERT INTO videos (video_id, channel_id, title, description, publish_date, duration, thumbnail_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (video_id) DO UPDATE SET
channel_id = EXCLUDED.channel_id,
title = EXCLUDED.title,
description = EXCLUDED.description,
publish_date = EXCLUDED.publish_date,
duration = EXCLUDED.duration,
thumbnail_url = EXCLUDED.thumbnail_url`,
			video.VideoID, video.ChannelID, video.Title, video.Description,
			video.PublishedAt, video.Duration, video.ThumbnailURL)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert video %s: %w", video.VideoID, err)
		}

		stats := detail.Statistics
		_, err = tx.ExecContext(ctx, `
INSERT INTO video_statistics (video_id, views, likes, comments)
VALUES ($1, $2, $3, $4)
ON CONFLICT (video_id) DO UPDATE SET
views = EXCLUDED.views,
likes = EXCLUDED.likes,
comments = EXCLUDED.comments`,
			stats.VideoID, stats.Views, stats.Likes, stats.Comments)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert statistics for video %s: %w", stats.VideoID, err)
		}
	}

	return tx.Commit()
}

// GetChannel reads one persisted channel record.
func (p *Postgres) GetChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	row := p.db.QueryRowContext(ctx, `
SELECT channel_id, channel_name, description, subscribers, total_videos, total_views, created_date, thumbnail_url
FROM channels
WHERE channel_id = $1`, channelID)

	var channel models.Channel
	var createdAt sql.NullTime
	err := row.Scan(&channel.ChannelID, &channel.Name, &channel.Description,
		&channel.Subscribers, &channel.TotalVideos, &channel.TotalViews,
		&createdAt, &channel.ThumbnailURL)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get channel %s: %w", channelID, err)
	}
	if createdAt.Valid {
		channel.CreatedAt = createdAt.Time
	}

	return &channel, nil
}

// ListVideos reads the persisted videos of a channel joined with their
// statistics, newest first. A limit of 0 means no limit.
func (p *Postgres) ListVideos(ctx context.Context, channelID string, limit int) ([]models.VideoDetail, error) {
	query := `
SELECT v.video_id, v.channel_id, v.title, v.description, v.publish_date, v.duration, v.thumbnail_url,
       COALESCE(s.views, 0), COALESCE(s.likes, 0), COALESCE(s.comments, 0)
FROM videos v
LEFT JOIN video_statistics s ON s.video_id = v.video_id
WHERE v.channel_id = $1
ORDER BY v.publish_date DESC`
	args := []interface{}{channelID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list videos for channel %s: %w", channelID, err)
	}
	defer rows.Close()

	var details []models.VideoDetail
	for rows.Next() {
		var video models.Video
		var stats models.VideoStatistics
		var publishedAt sql.NullTime
		err := rows.Scan(&video.VideoID, &video.ChannelID, &video.Title, &video.Description,
			&publishedAt, &video.Duration, &video.ThumbnailURL,
			&stats.Views, &stats.Likes, &stats.Comments)
		if err != nil {
			return nil, err
		}
		if publishedAt.Valid {
			video.PublishedAt = publishedAt.Time
		}
		stats.VideoID = video.VideoID
		details = append(details, models.VideoDetail{Video: video, Statistics: stats})
	}

	return details, rows.Err()
}
